// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrParsing reports failures that occur while decoding configuration files.
	ErrParsing = errors.New("error parsing")
)

const (
	statusesField = "statuses"
	subjectField  = "subject"
	bodyField     = "body"
)

// NotifyConfig holds the run configuration of the notify pipeline.
type NotifyConfig struct {
	// Statuses lists the compliance statuses considered non-compliant.
	Statuses []string `yaml:"statuses"`
	// Subject is the template of the email subject, rendered per vendor.
	Subject string `yaml:"subject"`
	// Body is the template of the HTML email body, rendered per vendor.
	Body string `yaml:"body"`
	// Attachment is the path of the document attached to every email.
	Attachment string `yaml:"attachment,omitempty"`
}

// NewNotifyConfigFromPath parses the notification configuration at path.
// It reports failures encountered while reading or decoding the data and
// names every missing required field.
func NewNotifyConfigFromPath(path string) (*NotifyConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	config := new(NotifyConfig)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}

	missingFields := []string{}
	if len(config.Statuses) == 0 {
		missingFields = append(missingFields, statusesField)
	}
	if config.Subject == "" {
		missingFields = append(missingFields, subjectField)
	}
	if config.Body == "" {
		missingFields = append(missingFields, bodyField)
	}

	if len(missingFields) > 0 {
		return nil, fmt.Errorf("%w %q: missing required fields: %v", ErrParsing, path, strings.Join(missingFields, ", "))
	}

	return config, nil
}
