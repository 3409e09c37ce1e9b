// Command stafftoken prints a signed staff token for the protected routes.
//
//	STAFF_JWT_SECRET=... stafftoken -sub barista-1 -role staff -ttl 12h
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/lionscafe/storefront/internal/api/middleware"
	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/pkg/config"
	"github.com/lionscafe/storefront/pkg/logger"
)

func main() {
	sub := flag.String("sub", "staff", "token subject, logged as the actor of staff changes")
	role := flag.String("role", domain.RoleStaff, "staff or admin")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	log := logger.New(logger.Options{Level: "info", Pretty: true, Output: os.Stderr})

	cfg, err := config.LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *role != domain.RoleStaff && *role != domain.RoleAdmin {
		log.Fatal().Str("role", *role).Msg("role must be staff or admin")
	}

	token, err := middleware.IssueStaffToken(cfg.StaffJWTSecret, *sub, *role, *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("STAFF_JWT_SECRET must be set")
	}
	fmt.Println(token)
}
