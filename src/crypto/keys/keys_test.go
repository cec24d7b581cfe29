package keys

import (
	"crypto/sha256"
	"io/ioutil"
	"os"
	"path"
	"reflect"
	"testing"
)

func digestOf(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

func TestSignVerify(t *testing.T) {
	key, err := GenerateECDSAKey()
	if err != nil {
		t.Fatal(err)
	}

	digest := digestOf([]byte("a message"))

	r, s, err := Sign(key, digest)
	if err != nil {
		t.Fatal(err)
	}

	if !Verify(&key.PublicKey, digest, r, s) {
		t.Fatalf("signature should verify")
	}

	otherDigest := digestOf([]byte("another message"))
	if Verify(&key.PublicKey, otherDigest, r, s) {
		t.Fatalf("signature should not verify another digest")
	}
}

func TestEncodeDecodeSignature(t *testing.T) {
	key, _ := GenerateECDSAKey()

	digest := digestOf([]byte("a message"))

	r, s, err := Sign(key, digest)
	if err != nil {
		t.Fatal(err)
	}

	sig := EncodeSignature(r, s)

	dr, ds, err := DecodeSignature(sig)
	if err != nil {
		t.Fatal(err)
	}

	if r.Cmp(dr) != 0 || s.Cmp(ds) != 0 {
		t.Fatalf("decoded signature does not match")
	}

	if _, _, err := DecodeSignature("garbage"); err == nil {
		t.Fatalf("decoding a malformed signature should fail")
	}
}

func TestDumpParsePrivateKey(t *testing.T) {
	key, _ := GenerateECDSAKey()

	raw := DumpPrivateKey(key)

	parsed, err := ParsePrivateKey(raw)
	if err != nil {
		t.Fatal(err)
	}

	if key.D.Cmp(parsed.D) != 0 {
		t.Fatalf("parsed D does not match")
	}
	if !reflect.DeepEqual(FromPublicKey(&key.PublicKey), FromPublicKey(&parsed.PublicKey)) {
		t.Fatalf("parsed public key does not match")
	}
}

func TestSimpleKeyfile(t *testing.T) {
	dir, err := ioutil.TempDir("", "braid")
	if err != nil {
		t.Fatalf("err: %v ", err)
	}
	defer os.RemoveAll(dir)

	simpleKeyfile := NewSimpleKeyfile(path.Join(dir, "priv_key"))

	// Try a read, should get nothing
	key, err := simpleKeyfile.ReadKey()
	if err == nil {
		t.Fatalf("ReadKey should generate an error")
	}
	if key != nil {
		t.Fatalf("key is not nil")
	}

	// Initialize a key and try a write
	key, _ = GenerateECDSAKey()

	if err := simpleKeyfile.WriteKey(key); err != nil {
		t.Fatalf("err: %v", err)
	}

	// Try a read, should get the key
	readKey, err := simpleKeyfile.ReadKey()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if readKey.D.Cmp(key.D) != 0 {
		t.Fatalf("read key does not match written key")
	}
}
