// Package console implements the interactive text menu over the ledger. It
// is the only surface of the application: it parses user input, invokes the
// directory and services, and renders accounts and history lines.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/banco-ledger/internal/directory"
	"github.com/banco-ledger/internal/domain/account"
	"github.com/banco-ledger/internal/service"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Console drives the menu loop. All user-facing output goes to out; input is
// read line by line from in. Errors from the domain are rendered as messages
// and never terminate the loop.
type Console struct {
	scanner   *bufio.Scanner
	out       io.Writer
	dir       *directory.Directory
	transfers *service.TransferService
	interest  *service.InterestService
	batch     *service.BatchAccrualService
	logger    *slog.Logger

	header  *color.Color
	errText *color.Color
	okText  *color.Color
}

// New creates a console bound to the given reader and writer.
func New(
	in io.Reader,
	out io.Writer,
	dir *directory.Directory,
	transfers *service.TransferService,
	interest *service.InterestService,
	batch *service.BatchAccrualService,
	logger *slog.Logger,
) *Console {
	return &Console{
		scanner:   bufio.NewScanner(in),
		out:       out,
		dir:       dir,
		transfers: transfers,
		interest:  interest,
		batch:     batch,
		logger:    logger,
		header:    color.New(color.FgCyan, color.Bold),
		errText:   color.New(color.FgRed),
		okText:    color.New(color.FgGreen),
	}
}

// Run displays the menu until the user quits, input ends or the context is
// cancelled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		c.printMenu()
		line, ok := c.readLine("Select option: ")
		if !ok {
			return c.scanner.Err()
		}
		if line == "" {
			continue
		}

		option, err := strconv.Atoi(line)
		if err != nil {
			c.errorf("Invalid option.")
			continue
		}

		switch option {
		case 1:
			c.createAccountFlow()
		case 2:
			c.checkBalanceFlow()
		case 3:
			c.withdrawFlow()
		case 4:
			c.depositFlow()
		case 5:
			c.listAccountsFlow()
		case 6:
			c.transferFlow()
		case 7:
			c.historyFlow()
		case 8:
			c.applyInterestFlow(ctx)
		case 9:
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		default:
			c.errorf("Unknown option.")
		}
	}
}

func (c *Console) printMenu() {
	c.header.Fprintln(c.out, "\n========= BANK MENU =========")
	fmt.Fprintln(c.out, "1 - Create account")
	fmt.Fprintln(c.out, "2 - Check balance")
	fmt.Fprintln(c.out, "3 - Withdraw")
	fmt.Fprintln(c.out, "4 - Deposit")
	fmt.Fprintln(c.out, "5 - List accounts")
	fmt.Fprintln(c.out, "6 - Transfer")
	fmt.Fprintln(c.out, "7 - View history")
	fmt.Fprintln(c.out, "8 - Apply interest")
	fmt.Fprintln(c.out, "9 - Quit")
}

// readLine prompts and reads one trimmed line. The boolean is false once the
// input is exhausted.
func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

// readAmount prompts for a decimal amount.
func (c *Console) readAmount(prompt string) (decimal.Decimal, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(line)
	if err != nil {
		c.errorf("Invalid amount.")
		return decimal.Zero, false
	}
	return amount, true
}

// readAccount prompts for an id and resolves it in the directory.
func (c *Console) readAccount(prompt string) (*account.Account, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return nil, false
	}
	return c.resolveAccount(line)
}

// parseID parses a base-10 account id.
func parseID(line string) (int64, error) {
	return strconv.ParseInt(line, 10, 64)
}

func (c *Console) errorf(format string, args ...any) {
	c.errText.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) successf(format string, args ...any) {
	c.okText.Fprintf(c.out, format+"\n", args...)
}
