package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"kasir/internal/api"
	"kasir/internal/cart"
	"kasir/internal/journal"
	"kasir/internal/models"
	"kasir/internal/ui"
	"kasir/pkg/restclient"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("HTTP_TIMEOUT", "15s")
	viper.SetDefault("JOURNAL_PATH", "kasir-journal.db")
	viper.SetDefault("TERMINAL_NAME", "kasir-1")
	viper.AutomaticEnv()

	// --- Transport and API client ---
	cred := restclient.NewCredential()
	rest, err := restclient.NewClient(restclient.Config{
		BaseURL: viper.GetString("API_BASE_URL"),
		Timeout: viper.GetDuration("HTTP_TIMEOUT"),
	}, cred)
	if err != nil {
		log.Fatalf("Failed to initialize transport: %v", err)
	}
	client := api.NewClient(rest)

	// --- Receipt journal ---
	// Best-effort local audit trail; the terminal still works without it.
	var jrnl journal.Journal
	if gj, jerr := journal.Open(viper.GetString("JOURNAL_PATH")); jerr != nil {
		log.Printf("Warning: receipt journal unavailable: %v", jerr)
	} else {
		jrnl = gj
	}

	// --- Cart service ---
	service := cart.NewService(client, client, client, jrnl)

	log.Printf("Terminal %s ready, backend %s", viper.GetString("TERMINAL_NAME"), viper.GetString("API_BASE_URL"))

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)

	user := promptLogin(ctx, client, in)
	if err := service.RefreshProducts(ctx); err != nil {
		log.Fatalf("Failed to load product catalog: %v", err)
	}
	if !user.IsAdmin() {
		if id, serr := client.CurrentShiftID(ctx); serr == nil && id == "" {
			fmt.Println("No open shift. Use 'shift open <cash>' before selling.")
		}
	}

	runTerminal(ctx, client, service, jrnl, user, in)
	log.Println("Terminal stopped")
}

// promptLogin asks for credentials until the backend accepts them.
func promptLogin(ctx context.Context, client *api.Client, in *bufio.Scanner) *models.User {
	for {
		username := prompt(in, "Username: ")
		password := prompt(in, "Password: ")
		user, err := client.Login(ctx, username, password)
		if err != nil {
			fmt.Printf("Login failed: %v\n", err)
			continue
		}
		fmt.Printf("Welcome, %s (%s)\n", user.Name, user.Role)
		return user
	}
}

func runTerminal(ctx context.Context, client *api.Client, service *cart.Service, jrnl journal.Journal, user *models.User, in *bufio.Scanner) {
	for {
		line := prompt(in, "> ")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "products":
			for _, p := range service.Products() {
				fmt.Printf("%-8s %-24s %-12s stock %d\n", p.ID, p.Name, ui.FormatRupiah(p.Price), p.Stock)
			}
		case "refresh":
			report(service.RefreshProducts(ctx))
		case "cart":
			fmt.Print(ui.RenderCart(service.Cart().Lines(), service.Cart().Total()))
		case "add":
			report(withID(args, service.AddItem))
		case "inc":
			report(withID(args, service.IncreaseQuantity))
		case "dec":
			report(withID(args, service.DecreaseQuantity))
		case "rm":
			report(withID(args, service.RemoveItem))
		case "checkout":
			if len(args) != 1 {
				fmt.Println("usage: checkout <cash|qris|debit|transfer>")
				continue
			}
			receipt, err := service.Checkout(ctx, args[0], *user)
			if err != nil {
				fmt.Printf("Checkout failed: %v\n", err)
				continue
			}
			fmt.Print(ui.RenderReceipt(receipt))
		case "shift":
			handleShift(ctx, client, args)
		case "history":
			now := time.Now()
			transactions, err := client.ListTransactions(ctx, now.AddDate(0, 0, -7), now)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			for _, t := range transactions {
				fmt.Printf("%-12s %-20s %-10s %s\n", t.Code, t.CreatedAt.Format("2006-01-02 15:04"), t.PaymentMethod, ui.FormatRupiah(t.TotalAmount))
			}
		case "journal":
			if jrnl == nil {
				fmt.Println("Journal is not available.")
				continue
			}
			entries, err := jrnl.Recent(10)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			for _, e := range entries {
				fmt.Printf("%-12s %-20s %s\n", e.Code, e.CreatedAt.Format("2006-01-02 15:04"), ui.FormatRupiah(e.TotalAmount))
			}
		case "dashboard":
			summary, err := client.Dashboard(ctx)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("Today: %s over %d transactions, %d products, %d low on stock\n",
				ui.FormatRupiah(summary.TodayRevenue), summary.TodayTransactions, summary.ProductCount, summary.LowStockCount)
		case "logout":
			client.Logout()
			user = promptLogin(ctx, client, in)
		case "quit", "exit":
			return
		default:
			fmt.Println("commands: products refresh cart add inc dec rm checkout shift history journal dashboard logout quit")
		}
	}
}

func handleShift(ctx context.Context, client *api.Client, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: shift <open|close> <cash>")
		return
	}
	cash, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Println("usage: shift <open|close> <cash>")
		return
	}
	switch args[0] {
	case "open":
		shift, err := client.OpenShift(ctx, cash)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Shift %s opened with %s\n", shift.ID, ui.FormatRupiah(shift.OpeningCash))
	case "close":
		shift, err := client.CloseShift(ctx, cash)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Shift %s closed with %s\n", shift.ID, ui.FormatRupiah(shift.ClosingCash))
	default:
		fmt.Println("usage: shift <open|close> <cash>")
	}
}

func withID(args []string, op func(string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a product id")
	}
	return op(args[0])
}

func report(err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}
