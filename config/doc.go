// SPDX-License-Identifier: MIT
//
// Package config loads the labyrinth TOML settings: size bounds for user
// input and default generator and solver choices. Every key is optional and
// missing keys keep the values from Default.
package config
