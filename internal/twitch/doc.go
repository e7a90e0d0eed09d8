// Package twitch provides the HTTP client for the Twitch token and Helix
// streams endpoints.
//
// # Endpoints
//
//   - POST https://id.twitch.tv/oauth2/token with form fields client_id,
//     client_secret and grant_type=client_credentials. The JSON body must carry
//     access_token.
//   - GET https://api.twitch.tv/helix/streams?&user_login=a&user_login=b with
//     headers Client-ID and Authorization: Bearer <token>. The JSON body carries
//     a data array whose rows hold user_name.
//
// # Errors
//
// Every failure wraps one of three sentinels:
//
//   - ErrAuth: token endpoint unreachable, non-2xx, or no access_token.
//   - ErrTransport: status request failed or returned non-2xx.
//   - ErrMalformed: status body missing data or a row without user_name.
//
// Callers treat ErrTransport and ErrMalformed the same way: status is unknown
// and nothing is updated.
//
// # Usage
//
//	client, err := twitch.NewClient(twitch.Options{ClientID: id, ClientSecret: secret})
//	if err != nil {
//		return err
//	}
//	token, err := client.Authenticate(ctx)
//	if err != nil {
//		return err // fatal at startup
//	}
//	set, err := client.LiveStatus(ctx, token, []string{"kruge", "mst3k"})
package twitch
