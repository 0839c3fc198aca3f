// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package enginelog is the engine's logging seam: plain debug-gated
// log.Printf for routine trace output, logrus structured fields for
// the handful of events an operator actually needs to alert on
// (internal engine errors, fuse/daemon double failures).
package enginelog
