package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"strconv"
	"sync/atomic"

	"joken-ghost/internal/content"
	"joken-ghost/internal/game"
	"joken-ghost/internal/server"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	// Generate host key if it doesn't exist
	if err := ensureHostKey(hostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	c, err := content.LoadOrDefault(os.Getenv("JOKENGHOST_CONTENT"))
	if err != nil {
		log.Printf("Could not load content: %v, using %s", err, c.Name)
	}
	log.Printf("Content loaded: %s (%d species, %d shop items, %d slots)", c.Name, len(c.Species), len(c.Shop), c.Layout.Len())

	var seed int64
	if s := os.Getenv("JOKENGHOST_SEED"); s != "" {
		seed, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			log.Fatalf("Invalid JOKENGHOST_SEED %q: %v", s, err)
		}
		log.Printf("Seeded battles from %d", seed)
	}

	// Each connection gets its own source; seeded runs step the seed so every
	// battle is reproducible on its own.
	var next atomic.Int64
	next.Store(seed)
	newRNG := func() game.RNG {
		if seed == 0 {
			return game.NewRNG(0)
		}
		return game.NewRNG(next.Add(1) - 1)
	}

	listenAddr := defaultAddr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}
	sshServer := server.NewSSHServer(listenAddr, hostKeyPath, c, newRNG)
	sshServer.OnSession(func(s *game.Session) {
		log.Printf("Battle %s: wave of %d", s.ID(), len(s.Coordinator().FormationSnapshot()))
	})
	log.Printf("Starting JokenGhost, connect with: ssh -p %s YourName@localhost", listenAddr[1:])
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
