// ABOUTME: Club profile loading from an optional TOML file
// ABOUTME: File values replace the built-in defaults field by field and are validated before use

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"highlights-app-api/core/domain"
)

// LoadClubProfile returns the default profile, overridden by the TOML file at path when set
func LoadClubProfile(path string) (domain.ClubProfile, error) {
	profile := domain.DefaultClubProfile()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return domain.ClubProfile{}, fmt.Errorf("open club profile: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&profile); err != nil {
			return domain.ClubProfile{}, fmt.Errorf("parse club profile: %w", err)
		}
	}

	if err := ValidateClubProfile(profile); err != nil {
		return domain.ClubProfile{}, err
	}
	return profile, nil
}

// ValidateClubProfile checks the profile's struct tags
func ValidateClubProfile(profile domain.ClubProfile) error {
	if err := validator.New().Struct(profile); err != nil {
		return fmt.Errorf("invalid club profile: %w", err)
	}
	return nil
}
