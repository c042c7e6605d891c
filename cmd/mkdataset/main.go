// mkdataset writes a listings dataset in the formats the server can load.
//
//	mkdataset --out data_sample.pb
//	mkdataset --from listings.json --format sqlite --out car_listings.db
package main

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/kjannette/carprice-stats/internal/dataset"
	"github.com/kjannette/carprice-stats/internal/models"
	"github.com/kjannette/carprice-stats/internal/repository"
)

var (
	app    = kingpin.New("mkdataset", "Build a car listings dataset for carprice-stats.")
	from   = app.Flag("from", "JSON file with {id: {year, price}}; the built-in sample when empty").ExistingFile()
	out    = app.Flag("out", "Output path").Default("data_sample.pb").String()
	format = app.Flag("format", "Output format").Default("pb").Enum("pb", "sqlite")
)

var sample = models.Listings{
	"A": {Year: 2010, Price: 10000},
	"B": {Year: 2015, Price: 20000},
	"C": {Year: 2020, Price: 15000},
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(context.Background()); err != nil {
		log.WithError(err).Fatal("mkdataset failed")
	}
}

func run(ctx context.Context) error {
	listings := sample
	if *from != "" {
		raw, err := os.ReadFile(*from)
		if err != nil {
			return errors.Wrapf(err, "read %s", *from)
		}
		if listings, err = dataset.DecodeJSON(raw); err != nil {
			return err
		}
	}

	switch *format {
	case "sqlite":
		conn, err := sql.Open("sqlite3", *out)
		if err != nil {
			return errors.Wrapf(err, "open %s", *out)
		}
		defer conn.Close()
		if err := repository.SeedSQLite(ctx, conn, listings); err != nil {
			return err
		}
	default:
		blob, err := dataset.EncodeBlob(listings)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*out, blob, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", *out)
		}
	}

	log.WithFields(log.Fields{"records": len(listings), "out": *out, "format": *format}).Info("dataset written")
	return nil
}
