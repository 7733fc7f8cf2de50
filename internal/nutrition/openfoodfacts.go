package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/Rhysnute92/fitlog/internal/models"
)

// ErrNotFound means the barcode is simply not in the database. Callers treat
// it as a normal outcome and fall back to manual entry.
var ErrNotFound = errors.New("product not found")

// Client looks up products on the Open Food Facts API. Values come back per
// 100g serving.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type productResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			EnergyKcal100g float64 `json:"energy-kcal_100g"`
			Proteins100g   float64 `json:"proteins_100g"`
			Carbs100g      float64 `json:"carbohydrates_100g"`
			Fat100g        float64 `json:"fat_100g"`
		} `json:"nutriments"`
	} `json:"product"`
}

func (c *Client) ProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach product database: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product lookup returned %s", resp.Status)
	}

	var pr productResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}
	if pr.Status != 1 {
		return nil, ErrNotFound
	}

	name := pr.Product.ProductName
	if name == "" {
		name = "Unknown Product"
	}
	return &models.Product{
		Name:     name,
		Calories: math.Round(pr.Product.Nutriments.EnergyKcal100g),
		Protein:  pr.Product.Nutriments.Proteins100g,
		Carbs:    pr.Product.Nutriments.Carbs100g,
		Fat:      pr.Product.Nutriments.Fat100g,
	}, nil
}
