package main

import (
	"context"
	"fmt"

	"github.com/jaswdr/faker"
	"github.com/spf13/cobra"

	"github.com/tinoosan/employees/internal/config"
	"github.com/tinoosan/employees/internal/hr"
	"github.com/tinoosan/employees/internal/service/employee"
)

var seedLanguages = []string{"Go", "Python", "Java", "TypeScript", "Rust", "Agile"}

func newSeedCmd(cfg func() *config.Config) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert fake employees into the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("seed: --count must be positive, got %d", count)
			}
			c := cfg()
			logger, closeLog := buildLogger(c)
			defer closeLog()

			b, err := openBackend(cmd.Context(), c, logger)
			if err != nil {
				return err
			}
			defer b.close()

			created, err := seedFake(cmd.Context(), employee.New(b.store, b.store), faker.New(), count)
			if err != nil {
				return err
			}
			logDevSeed(logger, b.name, created)
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d employees\n", len(created))
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 10, "number of employees to create")
	return cmd
}

// seedFake creates n employees through the service so the usual create rules apply.
func seedFake(ctx context.Context, svc employee.Service, f faker.Faker, n int) ([]hr.Employee, error) {
	out := make([]hr.Employee, 0, n)
	for i := 0; i < n; i++ {
		e, err := svc.Create(ctx, hr.Employee{
			FullName:          f.Person().Name(),
			Position:          f.Company().JobTitle(),
			Language:          f.RandomStringElement(seedLanguages),
			SalaryGrade:       f.IntBetween(1, 10),
			IsRegularEmployee: f.Boolean().Bool(),
		})
		if err != nil {
			return out, fmt.Errorf("seed employee %d: %w", i+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}
