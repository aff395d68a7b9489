// Container orchestration for end-to-end runs: MariaDB, Authorizer, and the
// API image on one docker network. Used by cmd/testcontainers as a standalone
// process and by tests. Expects environment variables to be loaded from .env
// files before the call.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/techneurology/neurorelief/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const apiImageName = "neurorelief-test:latest"

// TestContainers tracks everything CreateAllTestContainers started so it can
// be torn down in reverse order.
type TestContainers struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	AuthorizerContainer testcontainers.Container
	APIContainer        testcontainers.Container
}

// Terminate stops all containers and removes the network. Safe to call on a
// partially constructed set.
func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.APIContainer != nil {
		if err := tc.APIContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate API container: %v", err)
		}
	}
	if tc.AuthorizerContainer != nil {
		if err := tc.AuthorizerContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate Authorizer: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate MariaDB: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// CreateAllTestContainers starts the full stack. Pass a nil *testing.T when
// running outside the test harness (cmd/testcontainers); failures then print
// and exit instead of calling t.Fatalf.
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	tc := &TestContainers{}

	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	tc.Network = nw
	networkName := nw.Name

	// MariaDB
	dbNetworkName := os.Getenv("DB_HOST")
	tcpDBPort, err := nat.NewPort("tcp", os.Getenv("DB_PORT"))
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
	}
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{string(tcpDBPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
				"MYSQL_DATABASE":      os.Getenv("DB_DATABASE"),
				"MYSQL_USER":          os.Getenv("DB_USER"),
				"MYSQL_PASSWORD":      os.Getenv("DB_PASSWORD"),
			},
			WaitingFor: wait.ForListeningPort(tcpDBPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {dbNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to start MariaDB")
	}
	tc.DBContainer = dbContainer

	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDBPort)
	if err := initMariaDB(dbHost, dbPort); err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to initialize databases")
	}

	// Authorizer
	authzNetworkName := "authorizer"
	tcpAuthzPort, err := nat.NewPort("tcp", os.Getenv("AUTHZ_PORT"))
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to create Authorizer port")
	}
	authzDBConnection := fmt.Sprintf("root:%s@tcp(%s:%s)/%s",
		os.Getenv("DB_ROOT_PASSWORD"), dbNetworkName, os.Getenv("DB_PORT"), os.Getenv("AUTHZ_DATABASE"))
	authorizerContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("AUTHZ_IMAGE"),
			ExposedPorts: []string{string(tcpAuthzPort)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     os.Getenv("AUTHZ_CLIENT_ID"),
				"PORT":          os.Getenv("AUTHZ_PORT"),
				"DATABASE_TYPE": "mysql",
				"DATABASE_NAME": os.Getenv("AUTHZ_DATABASE"),
				"DATABASE_URL":  authzDBConnection,
				"ADMIN_SECRET":  os.Getenv("AUTHZ_ADMIN_SECRET"),
				"ROLES":         "user",
				"DEFAULT_ROLES": "user",
			},
			WaitingFor: wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(10 * time.Second),
			Networks:   []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {authzNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to start Authorizer")
	}
	tc.AuthorizerContainer = authorizerContainer

	authzHost, _ := authorizerContainer.Host(ctx)
	authzPort, _ := authorizerContainer.MappedPort(ctx, tcpAuthzPort)
	logMessage(t, "AUTHZ_URL=%s:%s", authzHost, authzPort.Port())

	// API container, built from the repo Dockerfile when the image is absent
	apiPortNumber := os.Getenv("PORT")
	tcpAPIPort, err := nat.NewPort("tcp", apiPortNumber)
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to create API port")
	}

	apiContainerRequest := testcontainers.ContainerRequest{
		ExposedPorts: []string{string(tcpAPIPort)},
		Env: map[string]string{
			"DB_TYPE":             "mysql",
			"DB_HOST":             dbNetworkName,
			"DB_PORT":             os.Getenv("DB_PORT"),
			"DB_DATABASE":         os.Getenv("DB_DATABASE"),
			"DB_USER":             os.Getenv("DB_USER"),
			"DB_PASSWORD":         os.Getenv("DB_PASSWORD"),
			"DB_CONNECTION_LIMIT": os.Getenv("DB_CONNECTION_LIMIT"),
			"AUTHZ_URL":           fmt.Sprintf("http://%s:%s", authzNetworkName, os.Getenv("AUTHZ_PORT")),
			"AUTHZ_CLIENT_ID":     os.Getenv("AUTHZ_CLIENT_ID"),
			"PORT":                apiPortNumber,
		},
		WaitingFor: wait.ForHTTP("/healthz").WithPort(tcpAPIPort).WithStartupTimeout(30 * time.Second),
		Networks:   []string{networkName},
	}

	exists, err := imageExists(ctx, apiImageName)
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to check if image exists")
	}
	if exists {
		logMessage(t, "Image %s exists, reusing...", apiImageName)
		apiContainerRequest.Image = apiImageName
	} else {
		logMessage(t, "Image %s does not exist, building...", apiImageName)
		buildContext := os.Getenv("TESTCONTAINERS_BUILD_CONTEXT")
		if buildContext == "" {
			buildContext = "../.."
		}
		sessionID := uuid.New().String()
		imageNameParts := strings.Split(apiImageName, ":")
		apiContainerRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       imageNameParts[0],
			Tag:        imageNameParts[1],
			KeepImage:  true,
			BuildArgs: map[string]*string{
				"RESOURCE_REAPER_SESSION_ID": &sessionID,
			},
			PrintBuildLog: true,
		}
	}

	apiContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: apiContainerRequest,
		Started:          true,
	})
	if err != nil {
		tc.Terminate(t)
		exitWithError(t, err, "Failed to start API container")
	}
	tc.APIContainer = apiContainer

	apiHost, _ := apiContainer.Host(ctx)
	apiPort, _ := apiContainer.MappedPort(ctx, tcpAPIPort)
	logMessage(t, "BASE_URL=%s:%s", apiHost, apiPort.Port())

	logMessage(t, "NeuroRelief testcontainers started successfully")
	return tc, nil
}

// initMariaDB creates the service and Authorizer databases, the service
// account, and the application schema from the embedded DDL.
func initMariaDB(dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/",
		os.Getenv("DB_ROOT_PASSWORD"), dbHost, dbPort.Port()))
	if err != nil {
		return fmt.Errorf("connect to MariaDB for setup: %w", err)
	}
	defer db.Close()

	// Wait for the connection to be really ready
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
	}

	setup := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", os.Getenv("DB_DATABASE")),
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", os.Getenv("AUTHZ_DATABASE")),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")),
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.authorizer_users (id CHAR(36) NOT NULL PRIMARY KEY)",
			os.Getenv("AUTHZ_DATABASE")),
		"FLUSH PRIVILEGES",
	}
	for _, q := range setup {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%s: when executing > %s", err, q)
		}
	}

	if err := executeSQL(db, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("execute tables init sql: %w", err)
	}
	if err := executeSQL(db, data.InitdbMariaDBPrivileges); err != nil {
		return fmt.Errorf("execute privileges init sql: %w", err)
	}
	return nil
}

// executeSQL runs a multi-statement script, stripping line comments first
func executeSQL(db *sql.DB, script string) error {
	var stripped []string
	for _, line := range strings.Split(script, "\n") {
		stripped = append(stripped, excludeComment(line))
	}

	joined := strings.Join(stripped, "\n")
	queries := strings.Split(joined, ";")
	for _, q := range queries {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), q)
		}
	}
	return nil
}

// excludeComment drops a trailing "--" comment unless it sits inside a
// quoted string.
func excludeComment(line string) string {
	var out strings.Builder
	var quote byte
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == '-' && i+1 < len(line) && line[i+1] == '-':
			return out.String()
		}
		out.WriteByte(ch)
	}
	return out.String()
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
