// Package session implements the interactive menu loop that drives the
// catalog and account operations.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/papertrader/internal/domain"
	"github.com/vadiminshakov/papertrader/internal/services/account"
	"github.com/vadiminshakov/papertrader/internal/services/market"
	"go.uber.org/zap"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true)

	faintStyle = lipgloss.NewStyle().
			Foreground(subtle)
)

// State of the session loop.
type State int

const (
	// Running the loop keeps reading commands.
	Running State = iota
	// Exited the loop has terminated.
	Exited
)

// Session reads menu commands from its input and drives the catalog and
// account, writing results to its output. The loop owns no state beyond
// the injected services and terminates only on the exit command or on
// end of input.
type Session struct {
	catalog *market.Catalog
	account *account.Account
	in      *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
	state   State
}

// New creates a session reading whitespace-separated tokens from in and
// writing to out.
func New(catalog *market.Catalog, acc *account.Account, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Session{
		catalog: catalog,
		account: acc,
		in:      scanner,
		out:     out,
		logger:  logger,
		state:   Running,
	}
}

// State returns the current loop state.
func (s *Session) State() State {
	return s.state
}

// Run executes the menu loop until the user exits or input ends.
func (s *Session) Run() error {
	s.logger.Info("session started", zap.String("owner", s.account.Owner()))
	s.state = Running

	for s.state == Running {
		s.printMenu()

		token, ok := s.next()
		if !ok {
			// input exhausted, leave quietly
			s.state = Exited
			break
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			s.println(faintStyle.Render("Invalid option."))
			continue
		}

		switch choice {
		case 1:
			s.viewMarket()
		case 2:
			s.trade(domain.TradeKindBuy)
		case 3:
			s.trade(domain.TradeKindSell)
		case 4:
			s.viewPortfolio()
		case 5:
			s.viewTransactions()
		case 6:
			s.println("Thank you for using the Stock Trading Platform!")
			s.state = Exited
		default:
			s.println(faintStyle.Render("Invalid option."))
		}
	}

	s.logger.Info("session finished")
	if err := s.in.Err(); err != nil {
		return errors.Wrap(err, "read session input")
	}
	return nil
}

func (s *Session) printMenu() {
	s.println("")
	s.println(headerStyle.Render("=== Stock Trading Platform ==="))
	s.println("1. View Market")
	s.println("2. Buy Stock")
	s.println("3. Sell Stock")
	s.println("4. View Portfolio")
	s.println("5. View Transaction History")
	s.println("6. Exit")
	fmt.Fprint(s.out, "Choose an option: ")
}

func (s *Session) viewMarket() {
	s.println("")
	s.println(sectionStyle.Render("Available Stocks:"))
	for _, inst := range s.catalog.List() {
		fmt.Fprintf(s.out, "%-10s %-20s $%s\n", inst.Symbol, inst.Name, inst.Price.StringFixed(2))
	}
}

// trade runs one buy or sell command: symbol, quantity, then the account
// operation. Any failure is reported and leaves the account untouched.
func (s *Session) trade(kind domain.TradeKind) {
	verb := "buy"
	if kind == domain.TradeKindSell {
		verb = "sell"
	}

	fmt.Fprintf(s.out, "Enter stock symbol to %s: ", verb)
	symbol, ok := s.next()
	if !ok {
		s.state = Exited
		return
	}

	fmt.Fprint(s.out, "Enter quantity: ")
	qtyToken, ok := s.next()
	if !ok {
		s.state = Exited
		return
	}
	quantity, err := strconv.ParseInt(qtyToken, 10, 64)
	if err != nil {
		s.println(faintStyle.Render("Invalid quantity."))
		return
	}

	inst, err := s.catalog.Find(symbol)
	if err != nil {
		s.println("Stock not found.")
		return
	}

	if kind == domain.TradeKindBuy {
		_, err = s.account.Buy(inst, quantity)
	} else {
		_, err = s.account.Sell(inst, quantity)
	}

	switch {
	case err == nil:
		if kind == domain.TradeKindBuy {
			s.println(sectionStyle.Render("Stock purchased successfully!"))
		} else {
			s.println(sectionStyle.Render("Stock sold successfully!"))
		}
	case errors.Is(err, domain.ErrInsufficientFunds):
		s.println("Insufficient balance.")
	case errors.Is(err, domain.ErrInsufficientShares):
		s.println("You do not own enough shares.")
	case errors.Is(err, domain.ErrInvalidQuantity):
		s.println(faintStyle.Render("Invalid quantity."))
	default:
		s.logger.Error("trade failed", zap.String("symbol", inst.Symbol), zap.Error(err))
		s.println("Trade failed.")
	}
}

func (s *Session) viewPortfolio() {
	view := s.account.Portfolio(func(symbol string) (decimal.Decimal, bool) {
		inst, err := s.catalog.Find(symbol)
		if err != nil {
			return decimal.Zero, false
		}
		return inst.Price, true
	})

	s.println("")
	s.println(sectionStyle.Render("Your Portfolio:"))
	if len(view.Positions) == 0 {
		s.println("No stocks owned.")
		return
	}
	for _, pos := range view.Positions {
		fmt.Fprintf(s.out, "%s: %d shares\n", pos.Symbol, pos.Quantity)
	}
	fmt.Fprintf(s.out, "Market value: $%s\n", view.MarketValue.StringFixed(2))
	fmt.Fprintf(s.out, "Balance: $%s\n", view.Cash.StringFixed(2))
}

func (s *Session) viewTransactions() {
	s.println("")
	s.println(sectionStyle.Render("Transaction History:"))
	transactions := s.account.Transactions()
	if len(transactions) == 0 {
		s.println("No transactions yet.")
		return
	}
	for _, tx := range transactions {
		s.println(tx.String())
	}
}

func (s *Session) next() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}
