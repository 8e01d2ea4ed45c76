/*
Package clients provides a client for the manager API.

ManagerClient speaks the CBOR wire format to a contract manager or keep
manager, over TCP or over a unix-domain socket when the target is an
absolute path:

	c := clients.NewManagerClient("/run/enarx/contractmgr.sock")
	contracts, err := c.Contracts(ctx)

Every response is checked for the expected status code and for an exact
application/cbor content type before it is decoded. A 404 is reported as
interfaces.ErrNotFound.

MockManagerProvider is a testify mock of ManagerProvider for code that
drives a manager, such as the command line client.
*/
package clients
