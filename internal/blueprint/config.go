// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package blueprint

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"

	"github.com/gnusto-if/gnusto/cerrs"
	"github.com/gnusto-if/gnusto/internal/ids"
)

// Config is the small set of tunables a game may override from a
// JSON file without touching code — everything else in a Blueprint
// (items, locations, handlers, hooks, fuse/daemon functions) is wired
// in Go, not data.
type Config struct {
	Title          string       `json:"Title,omitempty"`
	Release        string       `json:"Release,omitempty"`
	Introduction   string       `json:"Introduction,omitempty"`
	MaxScore       int          `json:"MaxScore,omitempty"`
	StartLocation  string       `json:"StartLocation,omitempty"`
	RNGSeed        int64        `json:"RNGSeed,omitempty"`
	DebugFlags     DebugFlags_t `json:"DebugFlags"`
}

// DebugFlags_t gates the engine's debug-only trace output, the same
// per-subsystem boolean-bag shape as the teacher's own DebugFlags_t.
type DebugFlags_t struct {
	Parser     bool `json:"Parser,omitempty"`
	Dispatch   bool `json:"Dispatch,omitempty"`
	TimeSystem bool `json:"TimeSystem,omitempty"`
}

// Default returns the zero-value tunables every Blueprint starts
// from before an optional config file is merged in.
func Default() *Config {
	return &Config{
		Title:         "Untitled",
		MaxScore:      0,
		StartLocation: "",
	}
}

// Load reads a JSON config file and merges its non-zero fields over
// Default(). A missing file, a read error, or invalid JSON all
// return the default config rather than failing the caller — the
// same lenient behavior the teacher's own config loader uses, since
// a missing override file is the common case, not an error.
func Load(name string, debug bool) (*Config, error) {
	return LoadOverride(name, Default(), debug)
}

// LoadOverride is Load but merges the file's non-zero fields over a
// caller-supplied base instead of Default() — for a blueprint whose
// Title/StartLocation/etc. are already set in Go and only need a
// config file's fields applied on top, not replaced by the bare
// defaults a plain Load would fall back to.
func LoadOverride(name string, base *Config, debug bool) (*Config, error) {
	if debug {
		log.Printf("[blueprint] %q: loading configuration...\n", name)
	}
	cfg := base

	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[blueprint] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, nil
	}
	if sb.IsDir() {
		return cfg, cerrs.ErrIsDirectory
	}
	if !sb.Mode().IsRegular() {
		return cfg, cerrs.ErrIsNotAFile
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if debug {
			log.Printf("[blueprint] %q: %v\n", name, err)
		}
		return cfg, nil
	}
	var tmp Config
	if err := json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[blueprint] %q: %v\n", name, err)
		}
		return cfg, nil
	}
	copyNonZeroFields(&tmp, cfg)
	return cfg, nil
}

// copyNonZeroFields recursively copies every non-zero field from src
// onto dst, so a partial override file only replaces the fields it
// actually sets.
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)
	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)
		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}
		if srcField.Kind() == reflect.Struct {
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
			continue
		}
		dstField.Set(srcField)
	}
}

// startLocationID is a small accessor so callers don't reach into
// Config's string field directly when building a worldstore.PlayerInit.
func (c *Config) startLocationID() ids.LocationID {
	return ids.LocationID(c.StartLocation)
}
