// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/second-largest/internal/logger"
)

type Services struct {
	SecondLargestService SecondLargestService
}

func NewServices(logger *logger.Logger) *Services {
	return &Services{
		SecondLargestService: NewSecondLargestService(logger),
	}
}
