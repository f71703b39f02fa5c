package memory

import (
	"carlot/pkg/domain"
	"carlot/pkg/logger"
	"carlot/pkg/plate"
	"carlot/pkg/storage"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// seedCars are the brand, model and year of the cars every fresh store starts with.
var seedCars = [][3]string{ //nolint: gochecknoglobals
	{"Porsche", "911", "1969"},
	{"Volvo", "V60", "2019"},
	{"Volvo", "142", "1971"},
}

// Seed inserts the three demo cars, each with a random ID and a generated
// plate, and logs them.
func Seed(ctx context.Context, strg storage.CarStorage, plates plate.Generator) error {
	fields := make([]zap.Field, 0, len(seedCars))
	for i, c := range seedCars {
		p := plates.Generate()
		year := c[2]
		car := domain.Car{
			ID:           domain.NewCarID(),
			LicensePlate: &p,
			Brand:        c[0],
			Model:        c[1],
			Year:         &year,
		}
		if err := strg.Add(ctx, car); err != nil {
			return fmt.Errorf("could not seed car %s %s: %w", car.Brand, car.Model, err)
		}
		fields = append(fields, zap.String(fmt.Sprintf("car%d", i),
			fmt.Sprintf("%s %s %s %s (%s)", car.ID, p, car.Brand, car.Model, year)))
	}

	logger.Info(ctx, "randomized cars", fields...)

	return nil
}
