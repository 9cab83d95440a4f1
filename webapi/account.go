package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/minibank/ledger/pkg/domain/money"
	ledgersvc "github.com/minibank/ledger/pkg/service/ledger"
)

// Routes registers the account endpoints:
//
//   - POST /accounts                  : open an account for an owner
//   - POST /accounts/:id/deposit      : deposit funds
//   - POST /accounts/:id/withdraw     : withdraw funds
//   - GET  /accounts/:id/balance      : current balance
//   - GET  /accounts/:id/statement    : ordered transaction history
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Post("/accounts", CreateAccount(svc))
	app.Post("/accounts/:id/deposit", Deposit(svc))
	app.Post("/accounts/:id/withdraw", Withdraw(svc))
	app.Get("/accounts/:id/balance", GetBalance(svc))
	app.Get("/accounts/:id/statement", GetStatement(svc))
}

// CreateAccount returns the handler that opens a zero-balance account for
// the owner named in the request body.
func CreateAccount(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		ownerID, err := uuid.Parse(input.OwnerID)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid owner ID", "owner_id must be a valid UUID")
		}
		a, err := svc.CreateAccount(c.UserContext(), ownerID)
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to create account", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account created", newAccountResponse(a))
	}
}

// Deposit returns the handler that adds funds to the account in the path.
func Deposit(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok, err := parseAccountID(c)
		if !ok {
			return err
		}
		input, err := BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.Parse(input.Amount)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Invalid amount", err.Error())
		}
		tx, err := svc.Deposit(c.UserContext(), accountID, amount)
		if err != nil {
			log.Errorf("Failed to deposit: %v", err)
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to deposit", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", BalanceResponse{
			AccountID: accountID.String(),
			Balance:   tx.Balance.String(),
		})
	}
}

// Withdraw returns the handler that removes funds from the account in the
// path.
func Withdraw(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok, err := parseAccountID(c)
		if !ok {
			return err
		}
		input, err := BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.Parse(input.Amount)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Invalid amount", err.Error())
		}
		tx, err := svc.Withdraw(c.UserContext(), accountID, amount)
		if err != nil {
			log.Errorf("Failed to withdraw: %v", err)
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to withdraw", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", BalanceResponse{
			AccountID: accountID.String(),
			Balance:   tx.Balance.String(),
		})
	}
}

// GetBalance returns the handler reporting the account's current balance.
func GetBalance(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok, err := parseAccountID(c)
		if !ok {
			return err
		}
		balance, err := svc.GetBalance(c.UserContext(), accountID)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to get balance", err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Balance retrieved", BalanceResponse{
			AccountID: accountID.String(),
			Balance:   balance.String(),
		})
	}
}

// GetStatement returns the handler listing the account's transactions in
// creation order, oldest first.
func GetStatement(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok, err := parseAccountID(c)
		if !ok {
			return err
		}
		entries, err := svc.GetStatement(c.UserContext(), accountID)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to get statement", err.Error())
		}
		out := make([]TransactionResponse, 0, len(entries))
		for _, tx := range entries {
			out = append(out, newTransactionResponse(tx))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Statement retrieved", out)
	}
}

// parseAccountID parses the :id path parameter. When ok is false the
// error response has already been written and the returned error is its
// write result. Any well-formed UUID is passed through, the all-zeros one
// included; whether the account exists is the engine's call.
func parseAccountID(c *fiber.Ctx) (accountID uuid.UUID, ok bool, err error) {
	accountID, parseErr := uuid.Parse(c.Params("id"))
	if parseErr != nil {
		return uuid.Nil, false, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
	}
	return accountID, true, nil
}
