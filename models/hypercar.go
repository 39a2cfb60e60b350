// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// HypercarStatus is the sales status of a catalog entry.
type HypercarStatus string

const (
	StatusAvailable    HypercarStatus = "available"
	StatusSold         HypercarStatus = "sold"
	StatusReserved     HypercarStatus = "reserved"
	StatusComingSoon   HypercarStatus = "coming-soon"
	StatusDiscontinued HypercarStatus = "discontinued"
)

// Hypercar is a catalog entry.
//
// ID, Views, Favorites, IsActive and the timestamps are owned by the store;
// everything else is persisted as a document next to the queryable columns.
type Hypercar struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Name     string `json:"name"`
	Model    string `json:"model,omitempty"`
	Year     int    `json:"year"`
	FullName string `json:"fullName"`

	Price       Price          `json:"price"`
	Emoji       string         `json:"emoji,omitempty"`
	Images      []Image        `json:"images,omitempty"`
	Specs       Specs          `json:"specs"`
	Description Description    `json:"description"`
	Features    []Feature      `json:"features,omitempty"`
	Production  Production     `json:"production"`
	Status      HypercarStatus `json:"status"`
	Location    Location       `json:"location"`
	Tags        []string       `json:"tags,omitempty"`

	IsFeatured bool  `json:"isFeatured"`
	IsActive   bool  `json:"isActive"`
	Views      int64 `json:"views"`
	Favorites  int64 `json:"favorites"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName returns "brand name".
func (h Hypercar) DisplayName() string {
	return strings.TrimSpace(h.Brand + " " + h.Name)
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type Image struct {
	URL       string `json:"url"`
	Alt       string `json:"alt,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
	Order     int    `json:"order"`
}

type Measure struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit,omitempty"`
	Formatted string  `json:"formatted,omitempty"`
}

type Engine struct {
	Displacement  float64 `json:"displacement,omitempty"`
	Cylinders     int     `json:"cylinders,omitempty"`
	Configuration string  `json:"configuration,omitempty"`
	Description   string  `json:"description"`
}

type Specs struct {
	Power        Measure `json:"power"`
	TopSpeed     Measure `json:"topSpeed"`
	Acceleration Measure `json:"acceleration"`
	Engine       Engine  `json:"engine"`
	Weight       Measure `json:"weight"`
	Transmission string  `json:"transmission,omitempty"`
	Drivetrain   string  `json:"drivetrain,omitempty"`
}

type Description struct {
	Short string `json:"short"`
	Long  string `json:"long,omitempty"`
}

type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type Production struct {
	Limited   bool `json:"limited"`
	Units     int  `json:"units,omitempty"`
	StartYear int  `json:"startYear,omitempty"`
	EndYear   int  `json:"endYear,omitempty"`
}

type Location struct {
	Country    string `json:"country,omitempty"`
	City       string `json:"city,omitempty"`
	Dealership string `json:"dealership,omitempty"`
}

// HypercarFilter selects active catalog entries.
//
// Zero values mean "no constraint". Limit 0 with Page 0 returns every match.
type HypercarFilter struct {
	Page  int
	Limit int

	Brand    string
	Brands   []string
	Status   HypercarStatus
	Featured *bool
	Search   string

	MinPrice *float64
	MaxPrice *float64
	MinPower *float64
	MaxPower *float64
	MinSpeed *float64
	MaxSpeed *float64

	IDs        []string
	ExcludeIDs []string

	SortBy    string
	SortOrder string
}

// Offset returns the row offset of the requested page.
func (f HypercarFilter) Offset() int {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// HypercarPage is one page of catalog entries.
type HypercarPage struct {
	Hypercars  []Hypercar `json:"hypercars"`
	Pagination Pagination `json:"pagination"`
}

// FavoriteResult reports the favorites counter after a toggle.
type FavoriteResult struct {
	IsFavorited    bool  `json:"isFavorited"`
	FavoritesCount int64 `json:"favoritesCount"`
}

// CatalogOverview aggregates every active entry.
type CatalogOverview struct {
	TotalHypercars  int     `json:"totalHypercars"`
	TotalValue      float64 `json:"totalValue"`
	AvgPrice        float64 `json:"avgPrice"`
	MaxPower        float64 `json:"maxPower"`
	MaxSpeed        float64 `json:"maxSpeed"`
	AvgAcceleration float64 `json:"avgAcceleration"`
}

// BrandStat aggregates the active entries of one brand.
type BrandStat struct {
	Brand    string  `json:"brand"`
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avgPrice"`
	MaxPower float64 `json:"maxPower"`
}

// StatusStat counts the active entries in one status.
type StatusStat struct {
	Status HypercarStatus `json:"status"`
	Count  int            `json:"count"`
}

// HypercarStats is returned by GET /api/hypercars/stats.
type HypercarStats struct {
	Overview    CatalogOverview `json:"overview"`
	BrandStats  []BrandStat     `json:"brandStats"`
	StatusStats []StatusStat    `json:"statusStats"`
}
