package summary

import (
	"context"
	"fmt"
	"time"

	"hoteldesk/infras/otel"
	"hoteldesk/internal/domains/summary/service"
	"hoteldesk/shared/constant"
	"hoteldesk/transport/cli/prompt"
)

type Handler struct {
	service service.Summary
	otel    otel.Otel
}

func New(service service.Summary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// View prints the reporting view. Rows without an assignment carry null
// assignment columns and render without the room suffix.
func (handler *Handler) View(ctx context.Context, p *prompt.Prompter) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".summary.View")
	defer scope.End()

	rows, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		p.Println("Error reading booking summary: " + err.Error())

		return nil
	}

	p.Println("\n=== BOOKING SUMMARY (VIEW) ===")

	for _, row := range rows {
		line := fmt.Sprintf("BookingID: %d | GuestID: %d (%s) | %s to %s | Status: %s",
			row.BookingID,
			row.GuestID,
			row.GuestName,
			row.StartDate.Format(time.DateOnly),
			row.EndDate.Format(time.DateOnly),
			row.Status,
		)

		if row.StayDate.Valid {
			line += fmt.Sprintf(" | StayDate: %s | RoomID: %d (%s)",
				row.StayDate.Time.Format(time.DateOnly),
				row.RoomID.Int64,
				row.RoomType.String,
			)
		}

		p.Println(line)
	}

	return nil
}
