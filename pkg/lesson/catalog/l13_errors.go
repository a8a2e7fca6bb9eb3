package catalog

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Errors covers explicit error returns, sentinels, wrapping, and typed
// errors with errors.Is / errors.As.
var Errors = lesson.Descriptor{
	Number: 13,
	Slug:   "errors",
	Title:  "Errors, wrapping & sentinels",
	Runner: lesson.RunnerFunc(runErrors),
}

// errEmptyVault is a sentinel: compared by identity with errors.Is.
var errEmptyVault = errors.New("vault is empty")

// withdrawError carries structured context; matched with errors.As.
type withdrawError struct {
	Requested, Available int
}

func (e *withdrawError) Error() string {
	return fmt.Sprintf("requested %d but only %d available", e.Requested, e.Available)
}

func runErrors() {
	heading("Errors are values")
	if _, err := withdraw(0, 10); err != nil {
		fmt.Println("got:", err)
	}

	heading("Sentinels and errors.Is")
	_, err := withdraw(0, 0)
	fmt.Println("is errEmptyVault:", errors.Is(err, errEmptyVault))

	heading("Wrapping with %w")
	err = reconcile(5)
	fmt.Println("wrapped:", err)
	fmt.Println("still matches the sentinel through the wrap:", errors.Is(err, errEmptyVault))

	heading("Typed errors and errors.As")
	_, err = withdraw(100, 40)
	var we *withdrawError
	if errors.As(err, &we) {
		fmt.Println("shortfall:", we.Requested-we.Available)
	}

	heading("nil means success")
	got, err := withdraw(30, 40)
	fmt.Println("withdrew", got, "err =", err)
}

func withdraw(amount, balance int) (int, error) {
	if balance == 0 {
		return 0, errEmptyVault
	}
	if amount > balance {
		return 0, &withdrawError{Requested: amount, Available: balance}
	}
	return amount, nil
}

func reconcile(account int) error {
	if _, err := withdraw(1, 0); err != nil {
		return fmt.Errorf("reconcile account %d: %w", account, err)
	}
	return nil
}
