// Package httpclient issues single-shot GET and DELETE requests described by
// endpoint descriptors and decodes the JSON response into a typed value.
//
// Every request resolves exactly once, through a callback that runs on its
// own goroutine. Failures are classified by ErrorCode: the URL could not be
// built, the transport failed or timed out, the transport returned no
// response or body, the body did not decode, or (with StrictStatus) the
// status was not 2xx.
//
// # Basic Usage
//
//	exec, err := httpclient.New(httpclient.Config{Timeout: 10 * time.Second})
//
//	httpclient.Request(ctx, exec, endpoint.Get(endpoint.HTTPS, "api.example.com", "/users/1"),
//	    func(r httpclient.Result[User]) {
//	        if !r.Ok() {
//	            log.Println(r.Err())
//	            return
//	        }
//	        fmt.Println(r.Value().Name)
//	    })
//
// # Blocking
//
//	user, err := httpclient.Get[User](ctx, exec, endpoint.HTTPS, "api.example.com", "/users/1")
//	if httpclient.IsDecode(err) {
//	    // the server answered with something that is not a User
//	}
//
// Unless WithTransport is given, each request uses a fresh client whose
// connections are not reused by later requests.
package httpclient
