/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rollwin

import (
	"github.com/rulego/rollwin/logger"
)

// config holds the per-plan behavior toggles
type config struct {
	strictFrames bool
}

func defaultConfig() config {
	return config{}
}

// Option modifies a plan's default behavior
type Option func(*config)

// WithStrictFrames makes Apply fail on an empty frame instead of
// flagging the row invalid. Useful when the caller guarantees every
// window holds at least one element and wants violations surfaced.
func WithStrictFrames() Option {
	return func(c *config) {
		c.strictFrames = true
	}
}

// WithLogger replaces the global logger used during plan construction.
//
// Example:
//
//	custom := logger.NewLogger(logger.DEBUG, os.Stderr)
//	plan, err := rollwin.NewPlan[float64](types.Avg, rollwin.WithLogger(custom))
func WithLogger(log logger.Logger) Option {
	return func(c *config) {
		logger.SetDefault(log)
	}
}

// WithLogLevel sets the level of the default logger
func WithLogLevel(level logger.Level) Option {
	return func(c *config) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithDiscardLog disables all log output
func WithDiscardLog() Option {
	return func(c *config) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}
