package rest

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestIdentity generates a self-signed certificate and writes it,
// together with its private key, as a single PEM file in the layout
// Basispoort hands out to vendors.
func writeTestIdentity(t *testing.T) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "vendor.example"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "identity.pem")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, pem.Encode(file, &pem.Block{Type: "CERTIFICATE", Bytes: certDER}))
	require.NoError(t, pem.Encode(file, &pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}))

	return path
}

func TestClientBuilder_Build(t *testing.T) {
	identity := writeTestIdentity(t)

	client, err := NewClientBuilder(identity, Test).Build()
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "https://test-rest.basispoort.nl/", client.BaseURL().String())
}

func TestClientBuilder_Build_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.pem")

	_, err := NewClientBuilder(missing, Test).Build()
	require.Error(t, err)

	var certErr *CertificateError
	require.ErrorAs(t, err, &certErr)
	assert.Equal(t, "open", certErr.Op)
	assert.Equal(t, missing, certErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClientBuilder_Build_GarbagePEM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pem")
	require.NoError(t, os.WriteFile(path, []byte("this is not a certificate"), 0o600))

	_, err := NewClientBuilder(path, Test).Build()
	require.Error(t, err)

	var certErr *CertificateError
	require.ErrorAs(t, err, &certErr)
	assert.Equal(t, "parse", certErr.Op)
}

func TestClientBuilder_Build_BadTLSVersion(t *testing.T) {
	identity := writeTestIdentity(t)

	_, err := NewClientBuilder(identity, Test).MinTLSVersion(0xffff).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBuildClient)
}
