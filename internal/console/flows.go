package console

import (
	"context"
	"fmt"

	"github.com/banco-ledger/internal/domain/account"
)

func (c *Console) createAccountFlow() {
	owner, ok := c.readLine("Owner name: ")
	if !ok {
		return
	}
	if owner == "" {
		c.errorf("Owner name cannot be empty.")
		return
	}

	kindLine, ok := c.readLine("Kind (1=Checking, 2=Savings): ")
	if !ok {
		return
	}
	kind := account.KindChecking
	if kindLine == "2" {
		kind = account.KindSavings
	}

	balance, ok := c.readAmount("Initial balance: ")
	if !ok {
		return
	}

	acc, err := c.dir.Create(owner, kind, balance)
	if err != nil {
		c.errorf("Error: %v", err)
		return
	}
	c.logger.Info("account created", "account_id", acc.ID(), "kind", string(acc.Kind()))
	c.successf("Account created: %s", acc)
}

func (c *Console) checkBalanceFlow() {
	acc, ok := c.readAccount("Enter account ID: ")
	if !ok {
		return
	}
	fmt.Fprintf(c.out, "Current balance: %s\n", acc.Balance().StringFixed(2))
}

func (c *Console) withdrawFlow() {
	acc, ok := c.readAccount("Enter account ID: ")
	if !ok {
		return
	}
	amount, ok := c.readAmount("Amount to withdraw: ")
	if !ok {
		return
	}
	if err := acc.Withdraw(amount); err != nil {
		c.errorf("Error: %v", err)
		return
	}
	c.successf("Withdrawal successful. New balance: %s", acc.Balance().StringFixed(2))
}

func (c *Console) depositFlow() {
	acc, ok := c.readAccount("Enter account ID: ")
	if !ok {
		return
	}
	amount, ok := c.readAmount("Amount to deposit: ")
	if !ok {
		return
	}
	if err := acc.Deposit(amount); err != nil {
		c.errorf("Error: %v", err)
		return
	}
	c.successf("Deposit successful. New balance: %s", acc.Balance().StringFixed(2))
}

func (c *Console) listAccountsFlow() {
	accounts := c.dir.List()
	if len(accounts) == 0 {
		fmt.Fprintln(c.out, "No accounts.")
		return
	}
	for _, acc := range accounts {
		fmt.Fprintln(c.out, acc)
	}
}

func (c *Console) transferFlow() {
	source, ok := c.readAccount("Source account ID: ")
	if !ok {
		return
	}
	destination, ok := c.readAccount("Destination account ID: ")
	if !ok {
		return
	}
	amount, ok := c.readAmount("Amount to transfer: ")
	if !ok {
		return
	}
	if err := c.transfers.Transfer(source, destination, amount); err != nil {
		c.errorf("Transfer error: %v", err)
		return
	}
	c.successf("Transfer successful.")
}

func (c *Console) historyFlow() {
	acc, ok := c.readAccount("Enter account ID: ")
	if !ok {
		return
	}
	fmt.Fprintln(c.out, "Transaction history:")
	for _, record := range acc.History() {
		fmt.Fprintln(c.out, record)
	}
}

func (c *Console) applyInterestFlow(ctx context.Context) {
	line, ok := c.readLine("Account ID (or 'all'): ")
	if !ok {
		return
	}

	if line == "all" {
		results := c.batch.ApplyAll(ctx, c.dir.List())
		for _, res := range results {
			if res.Err != nil {
				c.errorf("Account %d: %v", res.AccountID, res.Err)
				continue
			}
			c.successf("Account %d: interest %s applied.", res.AccountID, res.Interest.StringFixed(2))
		}
		return
	}

	acc, ok := c.resolveAccount(line)
	if !ok {
		return
	}
	if _, err := c.interest.Apply(acc); err != nil {
		c.errorf("Error: %v", err)
		return
	}
	c.successf("Interest applied. New balance: %s", acc.Balance().StringFixed(2))
}

// resolveAccount parses an already-read id line and looks it up.
func (c *Console) resolveAccount(line string) (*account.Account, bool) {
	id, err := parseID(line)
	if err != nil {
		c.errorf("Invalid ID.")
		return nil, false
	}
	acc, found := c.dir.Lookup(id)
	if !found {
		c.errorf("Account not found.")
		return nil, false
	}
	return acc, true
}
