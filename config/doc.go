// SPDX-License-Identifier: MIT

// Package config loads commodel settings and community descriptors.
//
// Settings come from defaults, an optional YAML file and COMMODEL_*
// environment variables, in increasing precedence; the CLI binds its flags
// on top. Community descriptors are YAML files naming the JSON model file
// and the community metadata of every organism.
package config
