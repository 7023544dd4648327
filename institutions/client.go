// Package institutions reads the Basispoort institutions directory
// ("Instellingen V2"): school records, their groups, students and staff, and
// the per-institution permission that gates synchronizing any of it.
package institutions

import (
	"context"
	"strconv"
	"time"

	basispoort "github.com/basispoort/basispoort-sync-client"
	"github.com/basispoort/basispoort-sync-client/rest"
)

// dateFormat is the calendar-day form used in mutation endpoints.
const dateFormat = "2006-01-02"

// Client is the institutions directory client. It is stateless and safe for
// concurrent use.
type Client struct {
	rest     *rest.Client
	basePath string
}

// NewClient returns an institutions directory client on top of restClient.
func NewClient(restClient *rest.Client) *Client {
	return &Client{
		rest:     restClient,
		basePath: "rest/v2/",
	}
}

func (c *Client) institutionPath(id basispoort.ID, more ...string) string {
	p := c.basePath + "instellingen/" + strconv.FormatInt(int64(id), 10)
	for _, segment := range more {
		p += "/" + segment
	}
	return p
}

// InstitutionIDs lists the IDs of every institution visible to the vendor.
func (c *Client) InstitutionIDs(ctx context.Context) ([]basispoort.ID, error) {
	return rest.Get[[]basispoort.ID](ctx, c.rest, c.basePath+"instellingen")
}

// Overview fetches the compact record of one institution.
func (c *Client) Overview(ctx context.Context, id basispoort.ID) (Overview, error) {
	return rest.Get[Overview](ctx, c.rest, c.institutionPath(id))
}

// Details fetches the full record of one institution.
func (c *Client) Details(ctx context.Context, id basispoort.ID) (Details, error) {
	return rest.Get[Details](ctx, c.rest, c.institutionPath(id, "details"))
}

// Groups fetches the class groups of one institution.
func (c *Client) Groups(ctx context.Context, id basispoort.ID) (Groups, error) {
	return rest.Get[Groups](ctx, c.rest, c.institutionPath(id, "groepen"))
}

// Students fetches all students of one institution.
func (c *Client) Students(ctx context.Context, id basispoort.ID) (Students, error) {
	return rest.Get[Students](ctx, c.rest, c.institutionPath(id, "leerlingen"))
}

// StudentsByID fetches the given students of one institution.
func (c *Client) StudentsByID(ctx context.Context, id basispoort.ID, studentIDs []basispoort.ID) (Students, error) {
	return rest.Post[[]basispoort.ID, Students](ctx, c.rest, c.institutionPath(id, "leerlingen"), studentIDs)
}

// StudentsByChainID fetches the students of one institution identified by
// their ECK chain IDs.
func (c *Client) StudentsByChainID(ctx context.Context, id basispoort.ID, chainIDs []string) (Students, error) {
	return rest.Post[[]string, Students](ctx, c.rest, c.institutionPath(id, "leerlingen_eckid"), chainIDs)
}

// Staff fetches the staff members of one institution.
func (c *Client) Staff(ctx context.Context, id basispoort.ID) (Staff, error) {
	return rest.Get[Staff](ctx, c.rest, c.institutionPath(id, "staf"))
}

// ShortcutReference fetches the portal shortcut reference of one
// institution.
func (c *Client) ShortcutReference(ctx context.Context, id basispoort.ID) (string, error) {
	return rest.Get[string](ctx, c.rest, c.institutionPath(id, "ref"))
}

// SynchronizationPermission fetches the current synchronization permission
// of one institution. With requestPermission set, the call also files a
// permission request with the institution's ICT coordinator.
func (c *Client) SynchronizationPermission(ctx context.Context, id basispoort.ID, requestPermission bool) (SynchronizationPermission, error) {
	path := c.institutionPath(id, "uitgever", "synchronizationpermission") +
		"?request-permission=" + strconv.FormatBool(requestPermission)
	return rest.Get[SynchronizationPermission](ctx, c.rest, path)
}

// RelinquishSynchronizationPermission gives up the vendor's synchronization
// permission for one institution.
func (c *Client) RelinquishSynchronizationPermission(ctx context.Context, id basispoort.ID) error {
	_, err := rest.Delete[struct{}](ctx, c.rest, c.institutionPath(id, "uitgever", "synchronizationpermission"))
	return err
}

// SynchronizationPermissionsGranted lists the institutions that granted
// synchronization permission on the given calendar day.
func (c *Client) SynchronizationPermissionsGranted(ctx context.Context, date time.Time) ([]basispoort.ID, error) {
	path := c.basePath + "instellingen/synchronizationpermission/toegekend/" + date.Format(dateFormat)
	return rest.Get[[]basispoort.ID](ctx, c.rest, path)
}

// SynchronizationPermissionsRevoked lists the institutions that revoked
// synchronization permission on the given calendar day.
func (c *Client) SynchronizationPermissionsRevoked(ctx context.Context, date time.Time) ([]basispoort.ID, error) {
	path := c.basePath + "instellingen/synchronizationpermission/ingetrokken/" + date.Format(dateFormat)
	return rest.Get[[]basispoort.ID](ctx, c.rest, path)
}

// Find searches the directory for institutions matching the predicate.
func (c *Client) Find(ctx context.Context, predicate SearchPredicate) ([]SearchResult, error) {
	path := c.basePath + "nawsearch?" + predicate.values().Encode()
	return rest.Get[[]SearchResult](ctx, c.rest, path)
}
