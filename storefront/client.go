package storefront

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/shophub-store/shophub-api/models"
)

const (
	tokenStorageKey    = "token"
	userStorageKey     = "user"
	productsStorageKey = "products"
)

// Client wraps the REST API. The bearer token is attached to every request
// once set and survives restarts via Storage.
type Client struct {
	http    *resty.Client
	storage Storage
}

func NewClient(baseURL string, storage Storage) *Client {
	client := &Client{
		http:    resty.New().SetBaseURL(baseURL),
		storage: storage,
	}

	var token string
	if found, err := storage.Load(tokenStorageKey, &token); err != nil {
		log.Println("Could not restore session token:", err)
	} else if found && token != "" {
		client.http.SetAuthToken(token)
	}

	return client
}

// apiError is the server's rejection shape: a bare message string.
type apiError struct {
	Message string `json:"message"`
}

func responseError(resp *resty.Response) error {
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode())
}

type authEnvelope struct {
	Success bool              `json:"success"`
	User    models.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

type orderEnvelope struct {
	Success bool         `json:"success"`
	Order   models.Order `json:"order"`
	OrderID uint         `json:"orderId"`
}

type productEnvelope struct {
	Success bool           `json:"success"`
	Product models.Product `json:"product"`
}

type uploadEnvelope struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// Authenticated reports whether a bearer token is set.
func (c *Client) Authenticated() bool {
	return c.http.Token != ""
}

// Register creates a customer account. It does not sign the caller in.
func (c *Client) Register(input models.RegisterInput) (models.PublicUser, error) {
	var out authEnvelope
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/auth/register")
	if err != nil {
		return models.PublicUser{}, err
	}
	if resp.IsError() {
		return models.PublicUser{}, responseError(resp)
	}
	return out.User, nil
}

// Login signs in and persists the credential and user snapshot.
func (c *Client) Login(email, password string) (models.PublicUser, error) {
	var out authEnvelope
	resp, err := c.http.R().
		SetBody(models.LoginInput{Email: email, Password: password}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/auth/login")
	if err != nil {
		return models.PublicUser{}, err
	}
	if resp.IsError() {
		return models.PublicUser{}, responseError(resp)
	}

	c.http.SetAuthToken(out.Token)
	if err := c.storage.Save(tokenStorageKey, out.Token); err != nil {
		log.Println("Could not persist session token:", err)
	}
	if err := c.storage.Save(userStorageKey, out.User); err != nil {
		log.Println("Could not persist user snapshot:", err)
	}

	return out.User, nil
}

// Logout drops the credential and cached user. The cart is left alone: it
// belongs to the session, not the account.
func (c *Client) Logout() {
	c.http.SetAuthToken("")
	c.storage.Remove(tokenStorageKey)
	c.storage.Remove(userStorageKey)
}

func (c *Client) Profile() (models.PublicUser, error) {
	var out authEnvelope
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&apiError{}).
		Get("/auth/profile")
	if err != nil {
		return models.PublicUser{}, err
	}
	if resp.IsError() {
		return models.PublicUser{}, responseError(resp)
	}
	return out.User, nil
}

func (c *Client) UpdateProfile(input models.UpdateProfileInput) (models.PublicUser, error) {
	var out authEnvelope
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&out).
		SetError(&apiError{}).
		Put("/auth/profile")
	if err != nil {
		return models.PublicUser{}, err
	}
	if resp.IsError() {
		return models.PublicUser{}, responseError(resp)
	}
	if err := c.storage.Save(userStorageKey, out.User); err != nil {
		log.Println("Could not persist user snapshot:", err)
	}
	return out.User, nil
}

// Products fetches the catalog and caches the snapshot locally.
func (c *Client) Products() ([]models.Product, error) {
	var out []models.Product
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&apiError{}).
		Get("/products")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	if err := c.storage.Save(productsStorageKey, out); err != nil {
		log.Println("Could not persist product snapshot:", err)
	}
	return out, nil
}

func (c *Client) Product(id uint) (models.Product, error) {
	var out models.Product
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&apiError{}).
		Get(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return models.Product{}, err
	}
	if resp.IsError() {
		return models.Product{}, responseError(resp)
	}
	return out, nil
}

// PlaceOrder submits a prepared checkout payload. Most callers should go
// through Checkout, which also clears the cart on success.
func (c *Client) PlaceOrder(input models.CreateOrderInput) (models.Order, error) {
	var out orderEnvelope
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/orders")
	if err != nil {
		return models.Order{}, err
	}
	if resp.IsError() {
		return models.Order{}, responseError(resp)
	}
	return out.Order, nil
}

// MyOrders returns the caller's orders, newest first.
func (c *Client) MyOrders() ([]models.Order, error) {
	var out []models.Order
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&apiError{}).
		Get("/orders")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return out, nil
}
