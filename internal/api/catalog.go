package api

import (
	"context"

	"github.com/arpitapatill/Online-Pharmacy-Team3/internal/catalog"
)

type CatalogClient struct{ c *Client }

func NewCatalogClient(c *Client) *CatalogClient { return &CatalogClient{c: c} }

func (cc *CatalogClient) List(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := cc.c.GetJSON(ctx, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (cc *CatalogClient) Get(ctx context.Context, id catalog.ID) (catalog.Product, error) {
	var p catalog.Product
	if err := cc.c.GetJSON(ctx, "/api/products/"+id.String(), nil, &p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

func (cc *CatalogClient) Create(ctx context.Context, in catalog.NewProduct) (catalog.Product, error) {
	var p catalog.Product
	if err := cc.c.PostJSON(ctx, "/api/products", in, &p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

func (cc *CatalogClient) Update(ctx context.Context, id catalog.ID, patch catalog.Patch) (catalog.Product, error) {
	var p catalog.Product
	if err := cc.c.PutJSON(ctx, "/api/products/"+id.String(), patch, &p); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

func (cc *CatalogClient) Delete(ctx context.Context, id catalog.ID) error {
	return cc.c.DeleteJSON(ctx, "/api/products/"+id.String(), nil)
}
