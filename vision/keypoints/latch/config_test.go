package latch

import (
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestLoadConfiguration(t *testing.T) {
	cfg, err := LoadConfiguration(filepath.Join("testdata", "latch_config.json"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg, test.ShouldResemble, &Config{Multithread: true, MaxWorkers: 4})

	_, err = LoadConfiguration(filepath.Join("testdata", "negative_workers.json"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_workers")
	test.That(t, err.Error(), test.ShouldContainSubstring, "negative_workers.json")

	_, err = LoadConfiguration(filepath.Join("testdata", "unknown_field.json"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "num_threads")

	_, err = LoadConfiguration(filepath.Join("testdata", "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestConfigValidate(t *testing.T) {
	test.That(t, DefaultConfig().Validate("latch"), test.ShouldBeNil)
	test.That(t, (&Config{}).Validate("latch"), test.ShouldBeNil)

	err := (&Config{MaxWorkers: -3}).Validate("latch")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "-3")
}
