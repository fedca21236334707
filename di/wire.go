//go:build wireinject
// +build wireinject

package di

import (
	"hoteldesk/config"
	"hoteldesk/infras/otel"
	"hoteldesk/infras/postgres"
	"hoteldesk/transport/cli"

	bookingHandler "hoteldesk/internal/handlers/booking"
	guestHandler "hoteldesk/internal/handlers/guest"
	roomHandler "hoteldesk/internal/handlers/room"
	summaryHandler "hoteldesk/internal/handlers/summary"

	bookingRepository "hoteldesk/internal/domains/booking/repository"
	bookingService "hoteldesk/internal/domains/booking/service"
	guestRepository "hoteldesk/internal/domains/guest/repository"
	guestService "hoteldesk/internal/domains/guest/service"
	roomRepository "hoteldesk/internal/domains/room/repository"
	roomService "hoteldesk/internal/domains/room/service"
	summaryRepository "hoteldesk/internal/domains/summary/repository"
	summaryService "hoteldesk/internal/domains/summary/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var summaryDomain = wire.NewSet(
	summaryRepository.New,
	summaryService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomDomain,
	bookingDomain,
	summaryDomain,
)

var menu = wire.NewSet(
	wire.Struct(new(cli.DomainHandlers), "*"),
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	summaryHandler.New,
	cli.New,
)

func InitializeDesk() *cli.CLI {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		menu,
	)

	return &cli.CLI{}
}
