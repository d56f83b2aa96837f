package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/arpitapatill/Online-Pharmacy-Team3/internal/api"
	"github.com/arpitapatill/Online-Pharmacy-Team3/internal/config"
	"github.com/arpitapatill/Online-Pharmacy-Team3/internal/store"
)

func main() {
	var (
		featured = flag.Bool("featured", false, "show only featured products")
		email    = flag.String("email", "", "log in before browsing")
		password = flag.String("password", "", "password for -email")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base := api.NewClient(cfg.APIBaseURL, api.NewHTTPClient(cfg.HTTPTimeout))
	st := store.New(api.NewCatalogClient(base), api.NewAuthClient(base), logger)

	if *email != "" {
		user, err := st.Login(ctx, *email, *password)
		if err != nil {
			logger.Fatalf("login: %v", err)
		}
		logger.Printf("logged in as %s (%s)", user.Name, user.Role)
	}

	st.SetLoading(true)
	products := st.FetchProducts(ctx)
	st.SetLoading(false)

	if *featured {
		products = st.FeaturedProducts()
	}
	if len(products) == 0 {
		logger.Printf("no products available from %s", cfg.APIBaseURL)
		return
	}

	for _, p := range products {
		rx := "  "
		if p.Prescription {
			rx = "Rx"
		}
		fmt.Printf("%-6s  %-40s  %8.2f  %s  stock=%-4d  rating=%.1f (%d)\n",
			p.ID, p.Name, p.Price, rx, p.Stock, p.Rating, p.Reviews)
	}
}
