package config

import "fmt"

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.Matching.validate(); err != nil {
		return err
	}
	if err := c.Import.validate(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return fmt.Errorf("paths.data_dir is required")
	}
	if c.Paths.LogDir == "" {
		return fmt.Errorf("paths.log_dir is required")
	}
	return nil
}

func (m *Matching) validate() error {
	if m.FuzzyThreshold <= 0 || m.FuzzyThreshold > 1 {
		return fmt.Errorf("matching.fuzzy_threshold must be greater than 0 and at most 1, got %v", m.FuzzyThreshold)
	}
	return nil
}

func (i *Import) validate() error {
	if err := ensurePositive(map[string]int{
		"import.batch_size":          i.BatchSize,
		"import.alt_name_batch_size": i.AltNameBatchSize,
	}); err != nil {
		return err
	}
	return nil
}

func ensurePositive(values map[string]int) error {
	for name, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be greater than 0, got %d", name, value)
		}
	}
	return nil
}
