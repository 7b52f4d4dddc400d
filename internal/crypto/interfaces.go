package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/link_codec_mock.go -package=mock

import "time"

// LinkCodec mints and verifies the stateless download capability links.
// It knows nothing about the network, the database, or users; its only job
// is to bind a file identifier to an expiry instant inside an authenticated
// ciphertext.
//
// Links are self-describing: verification needs no store lookup, which also
// means a still-valid link cannot be revoked early. The only global
// invalidation lever is rotating the key the codec was built with.
type LinkCodec interface {
	// Mint builds the plaintext "{fileID}:{expiryUnix}", encrypts it with
	// the server-wide key, and returns the base64url-encoded result.
	Mint(fileID int64, now time.Time, ttl time.Duration) (string, error)

	// Verify decodes and decrypts a link. It never returns an error:
	// garbage, tampered, or undecryptable input yields (-1, false);
	// a parseable but expired link yields (fileID, false); a live link
	// yields (fileID, true).
	Verify(link string, now time.Time) (int64, bool)
}
