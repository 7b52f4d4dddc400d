// Package crypto implements the two token schemes used by the application:
// opaque random secrets for the email verification and password-reset flows,
// and the encrypted, self-expiring capability links that grant time-bound
// access to a single file without any server-side lookup table.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// LinkKeySize is the required length of the capability-link key in bytes
// (AES-256).
const LinkKeySize = 32

// InvalidFileID is the sentinel returned by [LinkCodec.Verify] when a link
// cannot be decrypted or parsed at all.
const InvalidFileID int64 = -1

// GenerateSecureToken returns 32 bytes of CSPRNG output encoded with
// URL-safe base64. The token carries no embedded metadata; validity is
// determined purely by comparing against the stored value and its stored
// expiry column. Returns an error if the random read fails.
func GenerateSecureToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("reading random token bytes: %w", err)
	}

	return base64.URLEncoding.EncodeToString(buf), nil
}

// GenerateLinkKey returns a fresh random AES-256 key for the link codec.
// Deployments that want links to survive a restart must persist the key and
// supply it through configuration; an ephemeral key invalidates every
// outstanding link at process exit.
func GenerateLinkKey() ([]byte, error) {
	key := make([]byte, LinkKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("reading random key bytes: %w", err)
	}

	return key, nil
}

// linkCodec is the AES-256-GCM implementation of [LinkCodec]. A random
// 12-byte nonce is prepended to the ciphertext so that the verification side
// can locate it: blob = nonce ‖ ciphertext.
type linkCodec struct {
	aead cipher.AEAD
}

// NewLinkCodec constructs a [LinkCodec] from a 32-byte key. The key is
// process-wide configuration; all state is read-only after construction, so
// the codec is safe for concurrent use.
func NewLinkCodec(key []byte) (LinkCodec, error) {
	if len(key) != LinkKeySize {
		return nil, fmt.Errorf("link key must be %d bytes, got %d", LinkKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating link cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating link AEAD: %w", err)
	}

	return &linkCodec{aead: aead}, nil
}

// Mint implements [LinkCodec].
func (c *linkCodec) Mint(fileID int64, now time.Time, ttl time.Duration) (string, error) {
	expiry := now.Add(ttl).Unix()
	plaintext := fmt.Sprintf("%d:%d", fileID, expiry)

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("reading link nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.URLEncoding.EncodeToString(blob), nil
}

// Verify implements [LinkCodec]. The (fileID, false) result for expired but
// structurally valid links lets tests distinguish "tampered" from "expired";
// callers must not propagate the id of an expired link any further.
func (c *linkCodec) Verify(link string, now time.Time) (int64, bool) {
	blob, err := base64.URLEncoding.DecodeString(link)
	if err != nil {
		return InvalidFileID, false
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return InvalidFileID, false
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// An authentication-tag mismatch here covers both tampering and links
	// minted under a rotated key.
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return InvalidFileID, false
	}

	fileIDPart, expiryPart, found := strings.Cut(string(plaintext), ":")
	if !found {
		return InvalidFileID, false
	}

	fileID, err := strconv.ParseInt(fileIDPart, 10, 64)
	if err != nil {
		return InvalidFileID, false
	}

	expiryUnix, err := strconv.ParseInt(expiryPart, 10, 64)
	if err != nil {
		return InvalidFileID, false
	}

	if now.After(time.Unix(expiryUnix, 0)) {
		return fileID, false
	}

	return fileID, true
}
