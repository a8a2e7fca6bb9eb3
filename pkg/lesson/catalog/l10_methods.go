package catalog

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

// Methods covers value vs pointer receivers and method values.
var Methods = lesson.Descriptor{
	Number: 10,
	Slug:   "methods",
	Title:  "Methods & receivers",
	Runner: lesson.RunnerFunc(runMethods),
}

type account struct {
	owner   string
	balance int
}

// deposit needs a pointer receiver to mutate the account.
func (a *account) deposit(amount int) {
	a.balance += amount
}

// statement only reads, so a value receiver is fine.
func (a account) statement() string {
	return fmt.Sprintf("%s: %d credits", a.owner, a.balance)
}

// wordList is a named slice type; methods can hang off any local named type.
type wordList []string

func (w wordList) join() string { return strings.Join(w, ", ") }

func runMethods() {
	heading("Pointer receivers mutate")
	acct := account{owner: "ada"}
	acct.deposit(100) // Go takes &acct automatically
	acct.deposit(50)
	fmt.Println(acct.statement())

	heading("Value receivers see a copy")
	read := acct
	_ = read.statement()
	fmt.Println("balance unchanged by reads:", acct.balance)

	heading("Methods on named non-struct types")
	w := wordList{"structs", "methods", "receivers"}
	fmt.Println("topics:", w.join())

	heading("Method values and expressions")
	dep := acct.deposit // bound to acct
	dep(25)
	fmt.Println("after bound method value:", acct.balance)

	statementOf := account.statement // unbound; receiver becomes an argument
	fmt.Println(statementOf(acct))
}
