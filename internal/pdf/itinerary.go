// Package pdf renders order itineraries as PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/partnersinbahamas/airport-api/internal/models"
)

// OrderItinerary renders a printable itinerary for an order, one line block
// per ticket.
func OrderItinerary(order *models.OrderDetail) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 18)
	doc.Cell(0, 12, "Booking Itinerary")
	doc.Ln(14)

	doc.SetFont("Arial", "", 11)
	doc.Cell(0, 7, fmt.Sprintf("Order: %s", order.ID))
	doc.Ln(7)
	doc.Cell(0, 7, fmt.Sprintf("Booked: %s", order.CreatedAt.Format("2006-01-02 15:04")))
	doc.Ln(12)

	for i, ticket := range order.Tickets {
		doc.SetFont("Arial", "B", 13)
		doc.Cell(0, 8, fmt.Sprintf("Ticket %d", i+1))
		doc.Ln(8)

		doc.SetFont("Arial", "", 11)
		doc.Cell(0, 6, fmt.Sprintf("Route: %s", ticket.Flight.Route))
		doc.Ln(6)
		doc.Cell(0, 6, fmt.Sprintf("Airplane: %s", ticket.Flight.Airplane))
		doc.Ln(6)
		doc.Cell(0, 6, fmt.Sprintf("Departure: %s", ticket.Flight.DepartureTime.Format("2006-01-02 15:04")))
		doc.Ln(6)
		doc.Cell(0, 6, fmt.Sprintf("Arrival: %s", ticket.Flight.ArrivalTime.Format("2006-01-02 15:04")))
		doc.Ln(6)
		doc.Cell(0, 6, fmt.Sprintf("Seat: row %d, seat %d", ticket.Row, ticket.Seat))
		doc.Ln(10)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render itinerary: %w", err)
	}

	return buf.Bytes(), nil
}
