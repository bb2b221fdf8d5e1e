package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	cartapp "github.com/kitchcrafter/storefront/internal/application/cart"
	"github.com/kitchcrafter/storefront/internal/application/checkout"
	"github.com/kitchcrafter/storefront/internal/domain/cart"
	"github.com/kitchcrafter/storefront/internal/domain/order"
	"github.com/kitchcrafter/storefront/internal/domain/shared/valueobject"
	"github.com/kitchcrafter/storefront/internal/infrastructure/config"
	"github.com/kitchcrafter/storefront/internal/infrastructure/logger"
	"github.com/kitchcrafter/storefront/internal/infrastructure/mail"
	"github.com/kitchcrafter/storefront/internal/infrastructure/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("storage", cfg.Storage.Path),
	)

	db, err := persistence.NewDatabase(cfg.Storage.Path)
	if err != nil {
		log.Fatal("Failed to open snapshot database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	repo := persistence.NewCartSnapshotRepository(db, cfg.Storage.Key, log)
	rule := cart.NewShippingRule(valueobject.NewMoney(cfg.Shipping.InteriorFeeDecimal()))
	store := cartapp.NewStore(repo, rule, log)

	sender, err := mail.NewClient(&mail.Config{
		BaseURL:    cfg.Mail.BaseURL,
		ServiceID:  cfg.Mail.ServiceID,
		TemplateID: cfg.Mail.TemplateID,
		PublicKey:  cfg.Mail.PublicKey,
		Timeout:    cfg.Mail.Timeout,
	}, log)
	if err != nil {
		log.Fatal("Failed to create delivery client", zap.Error(err))
	}

	recipient := order.Recipient{
		ToEmail:  cfg.Mail.ToEmail,
		ToName:   cfg.Mail.ToName,
		FromName: cfg.Mail.FromName,
	}

	ui := &consoleUI{out: os.Stdout}
	store.Subscribe(ui)

	orch := checkout.NewOrchestrator(store, sender, recipient, ui, log)

	store.Restore(context.Background())

	runLoop(store, orch, ui)
}

// runLoop drives the storefront from stdin, standing in for the web
// page's click handlers.
func runLoop(store *cartapp.Store, orch *checkout.Orchestrator, ui *consoleUI) {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	ui.printf("Comandos: add <id> <precio> <nombre> | remove <id> | qty <id> <n> | zone <ciudad> | show | clear | checkout | quit")

	for {
		ui.printf("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "add":
			if len(fields) < 4 {
				ui.printf("uso: add <id> <precio> <nombre>")
				continue
			}
			unitPrice, err := valueobject.NewMoneyFromString(fields[2])
			if err != nil {
				ui.printf("precio inválido: %v", err)
				continue
			}
			store.Add(ctx, fields[1], strings.Join(fields[3:], " "), unitPrice)
		case "remove":
			if len(fields) != 2 {
				ui.printf("uso: remove <id>")
				continue
			}
			store.Remove(ctx, fields[1])
		case "qty":
			if len(fields) != 3 {
				ui.printf("uso: qty <id> <n>")
				continue
			}
			n, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				ui.printf("cantidad inválida: %v", err)
				continue
			}
			store.SetQuantity(ctx, fields[1], n)
		case "zone":
			if len(fields) != 2 {
				ui.printf("uso: zone <ciudad>")
				continue
			}
			store.SetZone(cart.ParseZone(fields[1]))
		case "show":
			ui.renderCart(store.Snapshot())
		case "clear":
			store.Clear(ctx)
		case "checkout":
			form := ui.readForm(scanner)
			if ord, err := orch.Submit(ctx, form); err == nil {
				ui.printf("Orden %s por %s aceptada", ord.Reference, ord.Total.Display())
			}
		case "quit", "exit":
			return
		default:
			ui.printf("comando desconocido: %s", fields[0])
		}
	}
}

// consoleUI is the rendering collaborator: it observes cart updates
// and presents checkout state on the terminal.
type consoleUI struct {
	out *os.File
}

func (u *consoleUI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

// CartUpdated implements cartapp.Observer
func (u *consoleUI) CartUpdated(mutation cartapp.Mutation, snapshot cartapp.Snapshot) {
	switch mutation {
	case cartapp.MutationAdd:
		u.printf("✅ Producto agregado al carrito")
	case cartapp.MutationRemove:
		u.printf("🗑️ Producto removido del carrito")
	case cartapp.MutationClear:
		u.printf("🛒 Carrito vaciado")
	}
	u.printf("[carrito: %d artículos, total %s]", snapshot.UnitCount, snapshot.Total.Display())
}

// Notify implements checkout.Presenter
func (u *consoleUI) Notify(n checkout.Notification) {
	u.printf("[%s] %s: %s", n.Kind, n.Title, n.Message)
}

// SetSubmitEnabled implements checkout.Presenter
func (u *consoleUI) SetSubmitEnabled(enabled bool) {
	if enabled {
		u.printf("[botón de envío habilitado]")
	} else {
		u.printf("⏳ Enviando...")
	}
}

// DismissCheckout implements checkout.Presenter
func (u *consoleUI) DismissCheckout() {
	u.printf("[checkout cerrado]")
}

func (u *consoleUI) renderCart(s cartapp.Snapshot) {
	if len(s.Items) == 0 {
		u.printf("El carrito está vacío")
		return
	}
	for _, item := range s.Items {
		u.printf("  %s x%d  %s c/u  %s", item.Name, item.Quantity, item.UnitPrice.Display(), item.LineTotal().Display())
	}
	shipping := "GRATIS"
	if !s.Shipping.IsZero() {
		shipping = s.Shipping.Display()
	}
	u.printf("Subtotal: %s  Envío: %s  Total: %s", s.Subtotal.Display(), shipping, s.Total.Display())
}

// readForm collects the checkout fields line by line
func (u *consoleUI) readForm(scanner *bufio.Scanner) checkout.Form {
	prompt := func(label string) string {
		u.printf("%s:", label)
		if !scanner.Scan() {
			return ""
		}
		return scanner.Text()
	}
	return checkout.Form{
		Name:          prompt("Nombre completo"),
		Email:         prompt("Email"),
		Phone:         prompt("Teléfono"),
		Address:       prompt("Dirección completa"),
		City:          prompt("Ciudad/Departamento (guatemala/sacatepequez/interior)"),
		PaymentMethod: prompt("Método de pago (transferencia/efectivo/tarjeta)"),
		Notes:         prompt("Notas adicionales (opcional)"),
	}
}
