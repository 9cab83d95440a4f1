package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/minibank/ledger/infra/initializer"
	"github.com/minibank/ledger/pkg/config"
	"github.com/minibank/ledger/pkg/domain/money"
	ledgersvc "github.com/minibank/ledger/pkg/service/ledger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fail("Failed to load configuration: %v", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fail("Failed to initialize: %v", err)
	}
	svc := ledgersvc.NewService(deps)
	ctx := context.Background()

	switch os.Args[1] {
	case "create":
		requireArgs(3, "create <owner_id>")
		ownerID := mustUUID(os.Args[2])
		a, err := svc.CreateAccount(ctx, ownerID)
		if err != nil {
			fail("Error creating account: %v", err)
		}
		color.Green("Account created: ID=%s Owner=%s Balance=%s", a.ID, a.OwnerID, a.Balance)
	case "deposit":
		requireArgs(4, "deposit <account_id> <amount>")
		tx, err := svc.Deposit(ctx, mustUUID(os.Args[2]), mustAmount(os.Args[3]))
		if err != nil {
			fail("Error depositing: %v", err)
		}
		color.Green("Deposited %s, balance is now %s", tx.Amount, tx.Balance)
	case "withdraw":
		requireArgs(4, "withdraw <account_id> <amount>")
		tx, err := svc.Withdraw(ctx, mustUUID(os.Args[2]), mustAmount(os.Args[3]))
		if err != nil {
			fail("Error withdrawing: %v", err)
		}
		color.Green("Withdrew %s, balance is now %s", tx.Amount, tx.Balance)
	case "balance":
		requireArgs(3, "balance <account_id>")
		balance, err := svc.GetBalance(ctx, mustUUID(os.Args[2]))
		if err != nil {
			fail("Error fetching balance: %v", err)
		}
		color.Cyan("Balance: %s", balance)
	case "statement":
		requireArgs(3, "statement <account_id>")
		entries, err := svc.GetStatement(ctx, mustUUID(os.Args[2]))
		if err != nil {
			fail("Error fetching statement: %v", err)
		}
		if len(entries) == 0 {
			color.Yellow("No transactions.")
			return
		}
		for _, tx := range entries {
			line := fmt.Sprintf("%s  %-8s  %10s  balance %10s",
				tx.CreatedAt.Format("2006-01-02 15:04:05"), tx.Kind, tx.Amount, tx.Balance)
			if tx.Kind == "withdraw" {
				color.Red("%s", line)
			} else {
				color.Green("%s", line)
			}
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create <owner_id>")
	fmt.Println("  deposit <account_id> <amount>")
	fmt.Println("  withdraw <account_id> <amount>")
	fmt.Println("  balance <account_id>")
	fmt.Println("  statement <account_id>")
}

func requireArgs(n int, usage string) {
	if len(os.Args) < n {
		fail("Usage: %s", usage)
	}
}

func mustUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		fail("Invalid id %q: must be a UUID", s)
	}
	return id
}

func mustAmount(s string) money.Money {
	m, err := money.Parse(s)
	if err != nil {
		fail("Invalid amount %q: %v", s, err)
	}
	return m
}

func fail(format string, args ...any) {
	color.Red(format, args...)
	os.Exit(1)
}
