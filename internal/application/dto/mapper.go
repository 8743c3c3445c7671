package dto

import (
	"fx-rate-service/internal/domain/entities"
)

// RateMapper maneja la conversión entre entidades del dominio y DTOs
type RateMapper struct{}

// NewRateMapper crea una nueva instancia del mapper
func NewRateMapper() *RateMapper {
	return &RateMapper{}
}

// ToRateResponse convierte una cotización a {"CODE": value}
func (m *RateMapper) ToRateResponse(rate *entities.Rate) RateResponse {
	return RateResponse{rate.Currency.String(): rate.Value}
}

// ToHistoryResponse convierte la serie del dominio
func (m *RateMapper) ToHistoryResponse(series entities.HistorySeries) HistoryResponse {
	resp := make(HistoryResponse, len(series))
	for date, point := range series {
		resp[date] = HistoryPoint{BRL: point.BRL}
	}
	return resp
}

// ToConvertResponse extrae el monto convertido
func (m *RateMapper) ToConvertResponse(conversion *entities.Conversion) *ConvertResponse {
	return &ConvertResponse{ConvertedAmount: conversion.Result}
}
