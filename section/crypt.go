package section

import (
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/ridewithgps/tracklib/errs"
)

// KeySize is the required length, in bytes, of an encrypted section's key.
const KeySize = chacha20poly1305.KeySize

// NonceSize is the length, in bytes, of the random nonce prefixed to every
// encrypted section body.
const NonceSize = chacha20poly1305.NonceSizeX

// encryptBody seals plain under key with a freshly generated nonce,
// returning nonce || ciphertext || tag (spec §4.4).
func encryptBody(plain []byte, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, errs.ErrDecryptFail
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errs.ErrDecryptFail
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plain, nil), nil
}

// decryptBody opens a nonce || ciphertext || tag envelope under key,
// returning the plaintext standard-section body.
func decryptBody(body []byte, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, errs.ErrDecryptFail
	}
	if len(body) < NonceSize {
		return nil, errs.ErrDecryptFail
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errs.ErrDecryptFail
	}

	nonce, ciphertext := body[:NonceSize], body[NonceSize:]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errs.ErrDecryptFail
	}

	return plain, nil
}
