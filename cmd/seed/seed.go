package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"yelpcamp/internal/logger"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/service"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// CampgroundData is one campground in the seed file
type CampgroundData struct {
	Title       string  `yaml:"title"`
	Location    string  `yaml:"location"`
	Price       float64 `yaml:"price"`
	Image       string  `yaml:"image"`
	Description string  `yaml:"description"`
}

// CityData is a location used for generated campgrounds
type CityData struct {
	City  string `yaml:"city"`
	State string `yaml:"state"`
}

// SeedFile is the layout of the YAML seed file
type SeedFile struct {
	Campgrounds []CampgroundData `yaml:"campgrounds"`
	Image       string           `yaml:"image"`
	Description string           `yaml:"description"`
	Descriptors []string         `yaml:"descriptors"`
	Places      []string         `yaml:"places"`
	Cities      []CityData       `yaml:"cities"`
}

// ParseSeedFile decodes seed data
func ParseSeedFile(data []byte) (*SeedFile, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// LoadSeedFile reads path, or the built-in data when path is empty
func LoadSeedFile(path string) (*SeedFile, error) {
	data := defaultSeedData
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}
	return ParseSeedFile(data)
}

// Generate builds n random campgrounds from the descriptor, place and city lists
func (f *SeedFile) Generate(n int, rng *rand.Rand) ([]CampgroundData, error) {
	if n <= 0 {
		return nil, nil
	}
	if len(f.Descriptors) == 0 || len(f.Places) == 0 || len(f.Cities) == 0 {
		return nil, fmt.Errorf("seed file needs descriptors, places and cities to generate campgrounds")
	}

	out := make([]CampgroundData, n)
	for i := range out {
		city := f.Cities[rng.IntN(len(f.Cities))]
		out[i] = CampgroundData{
			Title:       f.Descriptors[rng.IntN(len(f.Descriptors))] + " " + f.Places[rng.IntN(len(f.Places))],
			Location:    city.City + ", " + city.State,
			Price:       float64(rng.IntN(20) + 10),
			Image:       f.Image,
			Description: f.Description,
		}
	}
	return out, nil
}

// Seeder inserts campgrounds through the service so every entry is validated
type Seeder struct {
	campgroundService service.CampgroundServiceInterface
	campgrounds       repository.CampgroundRepositoryInterface
	reviews           repository.ReviewRepositoryInterface
	concurrency       int
}

// NewSeeder creates a Seeder inserting at most concurrency campgrounds at once
func NewSeeder(campgroundService service.CampgroundServiceInterface, campgrounds repository.CampgroundRepositoryInterface, reviews repository.ReviewRepositoryInterface, concurrency int) *Seeder {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Seeder{
		campgroundService: campgroundService,
		campgrounds:       campgrounds,
		reviews:           reviews,
		concurrency:       concurrency,
	}
}

// Reset removes every campground and review
func (s *Seeder) Reset(ctx context.Context) error {
	reviews, err := s.reviews.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}
	campgrounds, err := s.campgrounds.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("delete campgrounds: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campgrounds": campgrounds,
		"reviews":     reviews,
	}).Info("Existing data removed")
	return nil
}

// Insert creates every campground in data and returns the new ids in input order
func (s *Seeder) Insert(ctx context.Context, data []CampgroundData) ([]string, error) {
	ids := make([]string, len(data))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for i, d := range data {
		eg.Go(func() error {
			price := service.Price(d.Price)
			resp, err := s.campgroundService.CreateCampground(egCtx, &service.CampgroundInput{
				Title:       d.Title,
				Location:    d.Location,
				Price:       &price,
				Image:       d.Image,
				Description: d.Description,
			})
			if err != nil {
				return fmt.Errorf("campground %d (%q): %w", i, d.Title, err)
			}
			ids[i] = resp.ID
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}
