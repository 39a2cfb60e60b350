package http

import "github.com/MKhiriev/vip-motors/models"

type userPayload struct {
	User models.Account `json:"user"`
}

type searchPayload struct {
	Results    []models.Hypercar `json:"results"`
	Pagination models.Pagination `json:"pagination"`
}

type favoritePayload struct {
	HypercarID string `json:"hypercarId"`
	models.FavoriteResult
}

type healthPayload struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}
