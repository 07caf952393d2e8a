package controllers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/AlexMaina05/Comande/pkg/resp"
	"github.com/AlexMaina05/Comande/services"
	"github.com/gin-gonic/gin"
)

type TicketController struct {
	Service *services.TicketService
}

func NewTicketController(svc *services.TicketService) *TicketController {
	return &TicketController{Service: svc}
}

// GET /api/orders/:id/print?type=food|beverage&format=json
//
// Renders the printable kitchen/bar ticket. The default response is HTML cut
// for a thermal printer; format=json returns the underlying ticket view.
func (ctl *TicketController) Print(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}
	view, err := ctl.Service.Format(orderID, c.Query("type"))
	if err != nil {
		respondErr(c, err)
		return
	}

	if c.Query("format") == "json" {
		resp.OK(c, view)
		return
	}

	// The QR image is a data URI, which html/template's URL filter would
	// otherwise reject; it is produced locally, never from user input.
	data := struct {
		*services.TicketView
		QRSrc template.URL
	}{view, template.URL(view.QRCode)}

	var buf bytes.Buffer
	if err := ticketTmpl.Execute(&buf, data); err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

var ticketTmpl = template.Must(template.New("ticket").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Order Ticket - {{.Title}} - Order #{{.OrderID}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; font-size: 12px; }
        .ticket { border: 1px solid #000; padding: 10px; width: 280px; margin: auto; }
        h1 { text-align: center; margin-top: 0; font-size: 1.3em; }
        p { margin: 3px 0; }
        ul { list-style-type: none; padding: 0; margin: 0; }
        li { margin-bottom: 5px; border-bottom: 1px dashed #ccc; padding-bottom: 3px; }
        li:last-child { border-bottom: none; }
        .item-name { font-weight: bold; }
        .special-requests { font-style: italic; font-size: 0.9em; color: #555; margin-left: 8px; }
        .total { font-weight: bold; text-align: right; margin-top: 6px; }
        .qr { text-align: center; margin-top: 8px; }
        .qr img { width: 96px; height: 96px; }
    </style>
</head>
<body>
    <div class="ticket">
        <h1>{{.Title}}</h1>
        <p><strong>Order ID:</strong> {{.OrderID}}</p>
        <p><strong>Customer:</strong> {{.CustomerName}}</p>
        <p><strong>Table #:</strong> {{if .TableNumber}}{{.TableNumber}}{{else}}N/A{{end}}</p>
        <p><strong>Timestamp:</strong> {{.CreatedAt}}</p>
        <hr>
        <p><strong>Items:</strong></p>
        <ul>
        {{range .Lines}}
            <li>
                <span class="item-name">{{.Quantity}}x {{.Name}}</span>
                {{if .SpecialRequests}}<p class="special-requests"><em>Note: {{.SpecialRequests}}</em></p>{{end}}
            </li>
        {{end}}
        </ul>
        <p class="total">Total: {{printf "%.2f" .Total}}</p>
        {{if .QRSrc}}<div class="qr"><img src="{{.QRSrc}}" alt="order qr"></div>{{end}}
    </div>
</body>
</html>
`))
