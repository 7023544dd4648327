// Package hostedlika talks to the hosted license provider service ("Hosted
// Lika"). Vendors register their methods and products here and grant
// individual users permission to use them, either by Basispoort user ID or
// by ECK chain ID.
package hostedlika

import (
	"context"
	"net/url"

	basispoort "github.com/basispoort/basispoort-sync-client"
	"github.com/basispoort/basispoort-sync-client/rest"
)

// Client is the Hosted Lika service client for a single license provider
// identity. It is stateless and safe for concurrent use.
type Client struct {
	rest     *rest.Client
	basePath string
}

// NewClient returns a Hosted Lika client that manages the catalog of the
// license provider registered under identityCode.
func NewClient(restClient *rest.Client, identityCode string) *Client {
	return &Client{
		rest:     restClient,
		basePath: "/hosted-lika/management/lika/" + url.PathEscape(identityCode) + "/",
	}
}

// methodPath builds the request path for one method, escaping the caller
// supplied ID so it cannot extend into further path segments.
func (c *Client) methodPath(methodID string, more ...string) string {
	p := c.basePath + "methode/" + url.PathEscape(methodID)
	for _, segment := range more {
		p += "/" + segment
	}
	return p
}

func (c *Client) productPath(methodID, productID string, more ...string) string {
	p := c.methodPath(methodID, "product") + "/" + url.PathEscape(productID)
	for _, segment := range more {
		p += "/" + segment
	}
	return p
}

// Methods lists every method registered under the provider identity.
func (c *Client) Methods(ctx context.Context) ([]MethodDetails, error) {
	list, err := rest.Get[methodList](ctx, c.rest, c.basePath+"methode")
	if err != nil {
		return nil, err
	}
	return list.Methods, nil
}

// Method fetches a single method by ID.
func (c *Client) Method(ctx context.Context, methodID string) (MethodDetails, error) {
	return rest.Get[MethodDetails](ctx, c.rest, c.methodPath(methodID))
}

// CreateMethod registers a new method.
func (c *Client) CreateMethod(ctx context.Context, method *MethodDetails) error {
	_, err := rest.Post[*MethodDetails, struct{}](ctx, c.rest, c.basePath+"methode", method)
	return err
}

// UpdateMethod replaces the method identified by method.ID.
func (c *Client) UpdateMethod(ctx context.Context, method *MethodDetails) error {
	_, err := rest.Put[*MethodDetails, struct{}](ctx, c.rest, c.methodPath(method.ID), method)
	return err
}

// DeleteMethod removes a method and all permissions granted on it.
func (c *Client) DeleteMethod(ctx context.Context, methodID string) error {
	_, err := rest.Delete[struct{}](ctx, c.rest, c.methodPath(methodID))
	return err
}

/*
 * Method permissions by Basispoort user ID.
 */

// MethodUserIDs lists the users permitted to use a method.
func (c *Client) MethodUserIDs(ctx context.Context, methodID string) ([]basispoort.ID, error) {
	list, err := rest.Get[userIDList](ctx, c.rest, c.methodPath(methodID, "gebruiker"))
	if err != nil {
		return nil, err
	}
	return list.Users, nil
}

// SetMethodUserIDs replaces the full set of users permitted to use a method.
func (c *Client) SetMethodUserIDs(ctx context.Context, methodID string, userIDs []basispoort.ID) error {
	payload := userIDList{Users: userIDs}
	_, err := rest.Put[userIDList, struct{}](ctx, c.rest, c.methodPath(methodID, "gebruiker"), payload)
	return err
}

// DeleteMethodUserIDs revokes the method permission from every user.
func (c *Client) DeleteMethodUserIDs(ctx context.Context, methodID string) error {
	_, err := rest.Delete[struct{}](ctx, c.rest, c.methodPath(methodID, "gebruiker"))
	return err
}

// AddMethodUserIDs grants the method permission to the given users, keeping
// existing grants.
func (c *Client) AddMethodUserIDs(ctx context.Context, methodID string, userIDs []basispoort.ID) error {
	payload := userIDList{Users: userIDs}
	_, err := rest.Post[userIDList, struct{}](ctx, c.rest, c.methodPath(methodID, "gebruiker", "addlist"), payload)
	return err
}

// RemoveMethodUserIDs revokes the method permission from the given users
// only.
func (c *Client) RemoveMethodUserIDs(ctx context.Context, methodID string, userIDs []basispoort.ID) error {
	payload := userIDList{Users: userIDs}
	_, err := rest.Post[userIDList, struct{}](ctx, c.rest, c.methodPath(methodID, "gebruiker", "removelist"), payload)
	return err
}

/*
 * Method permissions by ECK chain ID.
 */

// MethodUserChainIDs lists the chain-identified users permitted to use a
// method.
func (c *Client) MethodUserChainIDs(ctx context.Context, methodID string) ([]UserChainID, error) {
	list, err := rest.Get[userChainIDList](ctx, c.rest, c.methodPath(methodID, "gebruiker_eckid"))
	if err != nil {
		return nil, err
	}
	return list.Users, nil
}

// SetMethodUserChainIDs replaces the full set of chain-identified users
// permitted to use a method.
func (c *Client) SetMethodUserChainIDs(ctx context.Context, methodID string, users []UserChainID) error {
	payload := userChainIDList{Users: users}
	_, err := rest.Put[userChainIDList, struct{}](ctx, c.rest, c.methodPath(methodID, "gebruiker_eckid"), payload)
	return err
}

// DeleteMethodUserChainIDs revokes the method permission from every
// chain-identified user.
func (c *Client) DeleteMethodUserChainIDs(ctx context.Context, methodID string) error {
	_, err := rest.Delete[struct{}](ctx, c.rest, c.methodPath(methodID, "gebruiker_eckid"))
	return err
}

// AddMethodUserChainIDs grants the method permission to the given
// chain-identified users, keeping existing grants.
func (c *Client) AddMethodUserChainIDs(ctx context.Context, methodID string, users []UserChainID) error {
	payload := userChainIDList{Users: users}
	_, err := rest.Post[userChainIDList, struct{}](ctx, c.rest, c.methodPath(methodID, "gebruiker_eckid", "addlist"), payload)
	return err
}

// RemoveMethodUserChainIDs revokes the method permission from the given
// chain-identified users only.
func (c *Client) RemoveMethodUserChainIDs(ctx context.Context, methodID string, users []UserChainID) error {
	payload := userChainIDList{Users: users}
	_, err := rest.Post[userChainIDList, struct{}](ctx, c.rest, c.methodPath(methodID, "gebruiker_eckid", "removelist"), payload)
	return err
}

/*
 * Product management.
 */

// Products lists the products registered under a method.
func (c *Client) Products(ctx context.Context, methodID string) ([]ProductDetails, error) {
	list, err := rest.Get[productList](ctx, c.rest, c.methodPath(methodID, "product"))
	if err != nil {
		return nil, err
	}
	return list.Products, nil
}

// Product fetches a single product by ID.
func (c *Client) Product(ctx context.Context, methodID, productID string) (ProductDetails, error) {
	return rest.Get[ProductDetails](ctx, c.rest, c.productPath(methodID, productID))
}

// CreateProduct registers a new product under a method.
func (c *Client) CreateProduct(ctx context.Context, methodID string, product *ProductDetails) error {
	_, err := rest.Post[*ProductDetails, struct{}](ctx, c.rest, c.methodPath(methodID, "product"), product)
	return err
}

// UpdateProduct replaces the product identified by product.ID.
func (c *Client) UpdateProduct(ctx context.Context, methodID string, product *ProductDetails) error {
	_, err := rest.Put[*ProductDetails, struct{}](ctx, c.rest, c.productPath(methodID, product.ID), product)
	return err
}

// DeleteProduct removes a product and all permissions granted on it.
func (c *Client) DeleteProduct(ctx context.Context, methodID, productID string) error {
	_, err := rest.Delete[struct{}](ctx, c.rest, c.productPath(methodID, productID))
	return err
}

/*
 * Product permissions by Basispoort user ID.
 */

// ProductUserIDs lists the users permitted to use a product.
func (c *Client) ProductUserIDs(ctx context.Context, methodID, productID string) ([]basispoort.ID, error) {
	list, err := rest.Get[userIDList](ctx, c.rest, c.productPath(methodID, productID, "gebruiker"))
	if err != nil {
		return nil, err
	}
	return list.Users, nil
}

// SetProductUserIDs replaces the full set of users permitted to use a
// product.
func (c *Client) SetProductUserIDs(ctx context.Context, methodID, productID string, userIDs []basispoort.ID) error {
	payload := userIDList{Users: userIDs}
	_, err := rest.Put[userIDList, struct{}](ctx, c.rest, c.productPath(methodID, productID, "gebruiker"), payload)
	return err
}

// DeleteProductUserIDs revokes the product permission from every user.
func (c *Client) DeleteProductUserIDs(ctx context.Context, methodID, productID string) error {
	_, err := rest.Delete[struct{}](ctx, c.rest, c.productPath(methodID, productID, "gebruiker"))
	return err
}

// AddProductUserIDs grants the product permission to the given users,
// keeping existing grants.
func (c *Client) AddProductUserIDs(ctx context.Context, methodID, productID string, userIDs []basispoort.ID) error {
	payload := userIDList{Users: userIDs}
	_, err := rest.Post[userIDList, struct{}](ctx, c.rest, c.productPath(methodID, productID, "gebruiker", "addlist"), payload)
	return err
}

// RemoveProductUserIDs revokes the product permission from the given users
// only.
func (c *Client) RemoveProductUserIDs(ctx context.Context, methodID, productID string, userIDs []basispoort.ID) error {
	payload := userIDList{Users: userIDs}
	_, err := rest.Post[userIDList, struct{}](ctx, c.rest, c.productPath(methodID, productID, "gebruiker", "removelist"), payload)
	return err
}

/*
 * Product permissions by ECK chain ID.
 */

// ProductUserChainIDs lists the chain-identified users permitted to use a
// product.
func (c *Client) ProductUserChainIDs(ctx context.Context, methodID, productID string) ([]UserChainID, error) {
	list, err := rest.Get[userChainIDList](ctx, c.rest, c.productPath(methodID, productID, "gebruiker_eckid"))
	if err != nil {
		return nil, err
	}
	return list.Users, nil
}

// SetProductUserChainIDs replaces the full set of chain-identified users
// permitted to use a product.
func (c *Client) SetProductUserChainIDs(ctx context.Context, methodID, productID string, users []UserChainID) error {
	payload := userChainIDList{Users: users}
	_, err := rest.Put[userChainIDList, struct{}](ctx, c.rest, c.productPath(methodID, productID, "gebruiker_eckid"), payload)
	return err
}

// DeleteProductUserChainIDs revokes the product permission from every
// chain-identified user.
func (c *Client) DeleteProductUserChainIDs(ctx context.Context, methodID, productID string) error {
	_, err := rest.Delete[struct{}](ctx, c.rest, c.productPath(methodID, productID, "gebruiker_eckid"))
	return err
}

// AddProductUserChainIDs grants the product permission to the given
// chain-identified users, keeping existing grants.
func (c *Client) AddProductUserChainIDs(ctx context.Context, methodID, productID string, users []UserChainID) error {
	payload := userChainIDList{Users: users}
	_, err := rest.Post[userChainIDList, struct{}](ctx, c.rest, c.productPath(methodID, productID, "gebruiker_eckid", "addlist"), payload)
	return err
}

// RemoveProductUserChainIDs revokes the product permission from the given
// chain-identified users only.
func (c *Client) RemoveProductUserChainIDs(ctx context.Context, methodID, productID string, users []UserChainID) error {
	payload := userChainIDList{Users: users}
	_, err := rest.Post[userChainIDList, struct{}](ctx, c.rest, c.productPath(methodID, productID, "gebruiker_eckid", "removelist"), payload)
	return err
}

/*
 * Bulk actions.
 */

// BulkGrantPermissions grants permissions for every combination named in the
// request in one call.
func (c *Client) BulkGrantPermissions(ctx context.Context, req *BulkRequest) error {
	_, err := rest.Post[*BulkRequest, struct{}](ctx, c.rest, c.basePath+"permissions/grant", req)
	return err
}

// BulkRevokePermissions revokes permissions for every combination named in
// the request in one call.
func (c *Client) BulkRevokePermissions(ctx context.Context, req *BulkRequest) error {
	_, err := rest.Post[*BulkRequest, struct{}](ctx, c.rest, c.basePath+"permissions/revoke", req)
	return err
}
