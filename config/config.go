// config.go - Application configuration loading and saving.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and saves per-application configuration files.
//
// Configuration lives in ~/.{app}/ and is stored as TOML, with JSON
// accepted as a fallback format:
//   - ~/.{app}/config.toml
//   - ~/.{app}/config.json
//
// Values from the environment override values from the file; see
// ApplyEnv. Files are kept at mode 0600 because configuration commonly
// holds credentials.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNotFound is returned by Load when no configuration file exists.
// Callers typically treat it as "use defaults", not as a failure.
var ErrNotFound = errors.New("no configuration file found")

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the configuration directory for an application: ~/.{app}.
func Dir(app string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, "."+app), nil
}

// PathTOML returns the path of the TOML config file for an application.
func PathTOML(app string) (string, error) {
	dir, err := Dir(app)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// PathJSON returns the path of the JSON config file for an application.
func PathJSON(app string) (string, error) {
	dir, err := Dir(app)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureDir creates the configuration directory if it does not exist.
func EnsureDir(app string) error {
	dir, err := Dir(app)
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions tightens config file permissions to 0600.
// Config files commonly hold API keys, so group/world access is never
// acceptable.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm() != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", info.Mode().Perm(), err)
		}
	}
	return nil
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads an application's configuration into v, trying TOML first
// and then JSON. It returns ErrNotFound when neither file exists, in
// which case v is left untouched.
func Load(app string, v any) error {
	tomlPath, err := PathTOML(app)
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(tomlPath); statErr == nil {
		return LoadFile(tomlPath, v)
	}

	jsonPath, err := PathJSON(app)
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(jsonPath); statErr == nil {
		return LoadFile(jsonPath, v)
	}

	return ErrNotFound
}

// LoadFile reads a single configuration file into v, choosing the codec
// by file extension: .json is JSON, everything else is TOML.
func LoadFile(path string, v any) error {
	if err := ensureSecurePermissions(path); err != nil {
		// Permissions might not be fixable on all filesystems; loading
		// still proceeds.
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read JSON config: %w", err)
		}
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to decode JSON config: %w", err)
		}
		return nil
	}

	if _, err := toml.DecodeFile(path, v); err != nil {
		return fmt.Errorf("failed to decode TOML config: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes an application's configuration as TOML to the standard
// location, creating the directory as needed.
func Save(app string, v any) error {
	if err := EnsureDir(app); err != nil {
		return err
	}
	path, err := PathTOML(app)
	if err != nil {
		return err
	}
	return SaveFile(path, v)
}

// SaveFile writes configuration to a single file, choosing the codec by
// extension the same way LoadFile does. The write goes through a
// temporary file and rename so a crash never leaves a half-written
// config behind.
func SaveFile(path string, v any) error {
	var data []byte

	if strings.HasSuffix(path, ".json") {
		encoded, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON config: %w", err)
		}
		data = append(encoded, '\n')
	} else {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return fmt.Errorf("failed to encode TOML config: %w", err)
		}
		data = buf.Bytes()
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnv overrides fields of the struct pointed to by v from the
// environment. Each exported field maps to PREFIX_NAME, where NAME is
// the field's toml tag (or field name) uppercased. Nested structs
// recurse with the field name joined by an underscore:
//
//	type Config struct {
//		Verbose bool   `toml:"verbose"` // GREET_VERBOSE
//		Output  string `toml:"output"`  // GREET_OUTPUT
//	}
//	config.ApplyEnv("GREET", &cfg)
//
// Supported field kinds are string, bool, integers, and floats; other
// kinds are skipped.
func ApplyEnv(prefix string, v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return
	}
	applyEnvStruct(prefix, rv.Elem())
}

func applyEnvStruct(prefix string, rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Tag.Get("toml")
		if idx := strings.Index(name, ","); idx >= 0 {
			name = name[:idx]
		}
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		envName := prefix + "_" + strings.ToUpper(name)

		fv := rv.Field(i)
		if fv.Kind() == reflect.Struct {
			applyEnvStruct(envName, fv)
			continue
		}

		raw, ok := os.LookupEnv(envName)
		if !ok || !fv.CanSet() {
			continue
		}

		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Bool:
			if b, err := strconv.ParseBool(raw); err == nil {
				fv.SetBool(b)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				fv.SetInt(n)
			}
		case reflect.Float32, reflect.Float64:
			if f, err := strconv.ParseFloat(raw, 64); err == nil {
				fv.SetFloat(f)
			}
		}
	}
}
