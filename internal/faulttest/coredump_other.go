//go:build !linux

package faulttest

func disableCoreDump() {}

func limitCoreSize() {}
