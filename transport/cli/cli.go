package cli

import (
	"context"
	"io"
	"os"

	"hoteldesk/infras/otel"
	"hoteldesk/internal/handlers/booking"
	"hoteldesk/internal/handlers/guest"
	"hoteldesk/internal/handlers/room"
	"hoteldesk/internal/handlers/summary"
	"hoteldesk/transport/cli/prompt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type DomainHandlers struct {
	Guest   guest.Handler
	Room    room.Handler
	Booking booking.Handler
	Summary summary.Handler
}

// CLI runs the interactive menu over one input source and one output sink,
// dispatching each chosen operation to its handler. One operation runs to
// completion before the next choice is read.
type CLI struct {
	handlers DomainHandlers
	prompter *prompt.Prompter
}

func New(handlers DomainHandlers) *CLI {
	return NewWithIO(handlers, os.Stdin, os.Stdout)
}

// NewWithIO wires explicit streams so tests can script a whole session.
func NewWithIO(handlers DomainHandlers, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		handlers: handlers,
		prompter: prompt.New(in, out),
	}
}

func (c *CLI) Run(ctx context.Context) {
	sessionID := uuid.NewString()
	ctx = otel.WithSessionID(ctx, sessionID)
	log.Logger = log.Logger.With().Str("session", sessionID).Logger()
	log.Info().Msg("Desk session started")

	for {
		c.printMenu()

		choice, err := c.prompter.ReadInt("Choose option: ")
		if err != nil {
			log.Info().Msg("Input source closed, leaving")

			return
		}

		if done, err := c.dispatch(ctx, choice); done || err != nil {
			log.Info().Msg("Desk session ended")

			return
		}
	}
}

func (c *CLI) printMenu() {
	c.prompter.Println("\n===== HOTEL BOOKING SYSTEM =====")
	c.prompter.Println("1. View Guests")
	c.prompter.Println("2. View Bookings")
	c.prompter.Println("3. View Rooms")
	c.prompter.Println("4. View Booking Summary (VIEW)")
	c.prompter.Println("5. Add Guest")
	c.prompter.Println("6. Update Booking Status")
	c.prompter.Println("7. Delete Guest")
	c.prompter.Println("8. Transaction: Create Booking + RoomAssignment")
	c.prompter.Println("9. Create Booking via Stored Procedure")
	c.prompter.Println("10. Exit")
}

// dispatch runs one menu choice. done reports an explicit exit; a non-nil
// error means the input source is exhausted.
func (c *CLI) dispatch(ctx context.Context, choice int) (done bool, err error) {
	switch choice {
	case 1:
		err = c.handlers.Guest.List(ctx, c.prompter)
	case 2:
		err = c.handlers.Booking.List(ctx, c.prompter)
	case 3:
		err = c.handlers.Room.List(ctx, c.prompter)
	case 4:
		err = c.handlers.Summary.View(ctx, c.prompter)
	case 5:
		err = c.handlers.Guest.Add(ctx, c.prompter)
	case 6:
		err = c.handlers.Booking.UpdateStatus(ctx, c.prompter)
	case 7:
		err = c.handlers.Guest.Delete(ctx, c.prompter)
	case 8:
		err = c.handlers.Booking.CreateTransactional(ctx, c.prompter)
	case 9:
		err = c.handlers.Booking.CreateViaProcedure(ctx, c.prompter)
	case 10:
		c.prompter.Println("Goodbye.")

		return true, nil
	default:
		c.prompter.Println("Invalid choice.")
	}

	return false, err
}
