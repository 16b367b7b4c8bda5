package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/redmonkez12/fintrack/internal/account"
)

// PrintSuccess prints a highlighted confirmation line
func PrintSuccess(msg string) {
	fmt.Println(successStyle.Render(msg))
}

// PrintError prints an error message
func PrintError(msg string) {
	fmt.Println(errorStyle.Render("Error: " + msg))
}

// PrintAccounts renders accounts as an aligned table
func PrintAccounts(w io.Writer, accounts []account.Account) {
	fmt.Fprintln(w, titleStyle.Render("Accounts"))

	if len(accounts) == 0 {
		fmt.Fprintln(w, subtleStyle.Render("no accounts"))
		return
	}

	columns := [][]string{{"ID"}, {"NAME"}, {"EMAIL"}, {"VERIFIED"}, {"CREATED"}}
	for _, a := range accounts {
		columns[0] = append(columns[0], strconv.FormatInt(a.ID, 10))
		columns[1] = append(columns[1], a.Name)
		columns[2] = append(columns[2], a.Email)
		columns[3] = append(columns[3], strconv.FormatBool(a.EmailVerified))
		columns[4] = append(columns[4], a.CreatedAt.Format("2006-01-02 15:04"))
	}

	rendered := make([]string, len(columns))
	for i, col := range columns {
		cells := make([]string, len(col))
		cells[0] = headerStyle.Render(col[0])
		for j := 1; j < len(col); j++ {
			cells[j] = cellStyle.Render(col[j])
		}
		rendered[i] = strings.Join(cells, "\n")
	}

	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("%d account(s)", len(accounts))))
}
