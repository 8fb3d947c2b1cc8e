package storefront

import (
	"fmt"

	"github.com/shophub-store/shophub-api/models"
)

// Admin surface of the API. All of these require a token whose account
// carries the admin role; the server rejects everything else.

func (c *Client) Stats() (models.StatsResponse, error) {
	var out models.StatsResponse
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&apiError{}).
		Get("/admin/stats")
	if err != nil {
		return models.StatsResponse{}, err
	}
	if resp.IsError() {
		return models.StatsResponse{}, responseError(resp)
	}
	return out, nil
}

func (c *Client) Users() ([]models.PublicUser, error) {
	var out []models.PublicUser
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&apiError{}).
		Get("/admin/users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return out, nil
}

func (c *Client) DeleteUser(id uint) error {
	resp, err := c.http.R().
		SetError(&apiError{}).
		Delete(fmt.Sprintf("/admin/users/%d", id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return responseError(resp)
	}
	return nil
}

func (c *Client) AllOrders() ([]models.Order, error) {
	var out []models.Order
	resp, err := c.http.R().
		SetResult(&out).
		SetError(&apiError{}).
		Get("/orders/all")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, responseError(resp)
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(id uint, status string) (models.Order, error) {
	var out models.Order
	resp, err := c.http.R().
		SetBody(models.UpdateOrderStatusInput{Status: status}).
		SetResult(&out).
		SetError(&apiError{}).
		Put(fmt.Sprintf("/admin/orders/%d", id))
	if err != nil {
		return models.Order{}, err
	}
	if resp.IsError() {
		return models.Order{}, responseError(resp)
	}
	return out, nil
}

func (c *Client) DeleteOrder(id uint) error {
	resp, err := c.http.R().
		SetError(&apiError{}).
		Delete(fmt.Sprintf("/admin/orders/%d", id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return responseError(resp)
	}
	return nil
}

func (c *Client) CreateProduct(input models.ProductInput) (models.Product, error) {
	var out productEnvelope
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/products")
	if err != nil {
		return models.Product{}, err
	}
	if resp.IsError() {
		return models.Product{}, responseError(resp)
	}
	return out.Product, nil
}

func (c *Client) UpdateProduct(id uint, input models.ProductInput) (models.Product, error) {
	var out models.Product
	resp, err := c.http.R().
		SetBody(input).
		SetResult(&out).
		SetError(&apiError{}).
		Put(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return models.Product{}, err
	}
	if resp.IsError() {
		return models.Product{}, responseError(resp)
	}
	return out, nil
}

func (c *Client) DeleteProduct(id uint) error {
	resp, err := c.http.R().
		SetError(&apiError{}).
		Delete(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return responseError(resp)
	}
	return nil
}

// UploadImage relays a local image file through the server to object storage
// and returns the public URL.
func (c *Client) UploadImage(path string) (string, error) {
	var out uploadEnvelope
	resp, err := c.http.R().
		SetFile("image", path).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/uploads/image")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", responseError(resp)
	}
	return out.URL, nil
}
