// towerctl is a small operator CLI for a running towersim instance.
//
//	towerctl [-addr host:port] snapshot
//	towerctl [-addr host:port] history
//	towerctl [-addr host:port] mode [ai_optimized|manual]
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/towersim/towersim/pkg/common"
	"github.com/towersim/towersim/pkg/types"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "towersim API address")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	client := common.HTTPClient(10 * time.Second)
	base := "http://" + *addr

	var err error
	switch args[0] {
	case "snapshot":
		err = get(client, base+"/api/snapshot")
	case "history":
		err = get(client, base+"/api/history")
	case "mode":
		if len(args) < 2 {
			err = get(client, base+"/api/mode")
			break
		}
		var mode types.OperatingMode
		mode, err = types.ParseOperatingMode(args[1])
		if err != nil {
			break
		}
		err = setMode(client, base, mode)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "towerctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: towerctl [-addr host:port] snapshot|history|mode [ai_optimized|manual]")
}

func get(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func setMode(client *http.Client, base string, mode types.OperatingMode) error {
	body, err := json.Marshal(struct {
		Mode types.OperatingMode `json:"mode"`
	}{Mode: mode})
	if err != nil {
		return err
	}

	resp, err := client.Post(base+"/api/mode", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

// printResponse pretty-prints the JSON body, or fails with the API error.
func printResponse(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(raw))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// not JSON, print as-is
		fmt.Println(string(raw))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}
