package room

import (
	"context"

	"hoteldesk/infras/otel"
	"hoteldesk/internal/domains/room/service"
	"hoteldesk/shared/constant"
	"hoteldesk/transport/cli/prompt"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) List(ctx context.Context, p *prompt.Prompter) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".room.List")
	defer scope.End()

	rooms, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		p.Println("Error reading rooms: " + err.Error())

		return nil
	}

	p.Println("\n=== ROOMS ===")

	for _, room := range rooms {
		p.Printf("%d | %s | %s | %d\n", room.RoomID, room.RoomType, room.Price, room.Capacity)
	}

	return nil
}
