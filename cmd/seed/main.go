package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/salonflow/booking/backend/internal/config"
	"github.com/salonflow/booking/backend/internal/repository"
	"github.com/salonflow/booking/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var staffCount int
	var bookingsPerStaff int

	flag.IntVar(&staffCount, "staff", 5, "number of professionals to insert")
	flag.IntVar(&bookingsPerStaff, "bookings", 8, "number of future bookings per professional")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect, ping to fail fast on a bad DSN
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	loc, err := time.LoadLocation(cfg.Salon.Timezone)
	if err != nil {
		logger.Error("unable to load salon timezone", "error", err)
		return
	}

	if staffCount <= 0 || bookingsPerStaff < 0 {
		logger.Error("invalid staff or bookings count")
		return
	}

	seed.SeedDemoData(repo, loc, staffCount, bookingsPerStaff)
}
