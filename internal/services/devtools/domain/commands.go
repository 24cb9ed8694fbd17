// Package domain describes the browser-automation tools the companion
// process exposes and which of them need a fresh page snapshot first.
package domain

import (
	"slices"
	"strings"
)

// SnapshotTool is the priming call issued before snapshot-dependent commands.
const SnapshotTool = "take_snapshot"

// Command describes one companion tool for help output.
type Command struct {
	Name        string
	Description string
	// Detail lists the accepted JSON parameters.
	Detail string
}

var commands = []Command{
	{
		Name:        "click",
		Description: "Clicks on the provided element",
		Detail: `Parameters:
  uid (string, required): the uid of an element on the page from the page content snapshot
  dblClick (boolean, optional): set to true for double clicks. Default is false.`,
	},
	{
		Name:        "close_page",
		Description: "Closes the page by its index. The last open page cannot be closed.",
		Detail: `Parameters:
  pageIdx (number, required): the index of the page to close. Call list_pages to list pages.`,
	},
	{
		Name:        "drag",
		Description: "Drag an element onto another element",
		Detail: `Parameters:
  from_uid (string, required): the uid of the element to drag
  to_uid (string, required): the uid of the element to drop into`,
	},
	{
		Name:        "emulate",
		Description: "Emulates various features on the selected page.",
		Detail: `Parameters:
  networkConditions (string, optional): throttle network. One of "No emulation", "Offline", "Slow 3G", "Fast 3G", "Slow 4G", "Fast 4G".
  cpuThrottlingRate (number, optional): the CPU throttling rate, 1 to 20. Set to 1 to disable throttling.`,
	},
	{
		Name:        "evaluate_script",
		Description: "Evaluate a JavaScript function inside the currently selected page. Returns the response as JSON so returned values have to be JSON-serializable.",
		Detail: `Parameters:
  function (string, required): a JavaScript function declaration to run in the page, e.g. "() => document.title"
  args (array, optional): elements passed to the function, each as {"uid": "<uid>"}`,
	},
	{
		Name:        "fill",
		Description: "Type text into an input, text area or select an option from a <select> element.",
		Detail: `Parameters:
  uid (string, required): the uid of an element on the page from the page content snapshot
  value (string, required): the value to fill in`,
	},
	{
		Name:        "fill_form",
		Description: "Fill out multiple form elements at once",
		Detail: `Parameters:
  elements (array, required): elements from the snapshot to fill out, each as {"uid": "<uid>", "value": "<value>"}`,
	},
	{
		Name:        "get_console_message",
		Description: "Gets a console message by its ID. You can get all messages by calling list_console_messages.",
		Detail: `Parameters:
  msgid (number, required): the msgid of a console message on the page from the listed console messages`,
	},
	{
		Name:        "get_network_request",
		Description: "Gets a network request by its ID. You can get all requests by calling list_network_requests.",
		Detail: `Parameters:
  reqid (number, required): the reqid of a network request on the page from the listed network requests`,
	},
	{
		Name:        "handle_dialog",
		Description: "If a browser dialog was opened, use this command to handle it",
		Detail: `Parameters:
  action (string, required): whether to "accept" or "dismiss" the dialog
  promptText (string, optional): text to enter into the dialog`,
	},
	{
		Name:        "hover",
		Description: "Hover over the provided element",
		Detail: `Parameters:
  uid (string, required): the uid of an element on the page from the page content snapshot`,
	},
	{
		Name:        "list_console_messages",
		Description: "List all console messages for the currently selected page since the last navigation.",
		Detail: `Parameters:
  pageSize (number, optional): maximum number of messages to return
  pageIdx (number, optional): page number to return (0-based)
  types (array, optional): filter messages to only return messages of the specified types`,
	},
	{
		Name:        "list_network_requests",
		Description: "List all requests for the currently selected page since the last navigation.",
		Detail: `Parameters:
  pageSize (number, optional): maximum number of requests to return
  pageIdx (number, optional): page number to return (0-based)
  resourceTypes (array, optional): filter requests to only return requests of the specified resource types`,
	},
	{
		Name:        "list_pages",
		Description: "Get a list of pages open in the browser.",
		Detail:      "Parameters: none",
	},
	{
		Name:        "navigate_page",
		Description: "Navigates the currently selected page to a URL.",
		Detail: `Parameters:
  url (string, required): URL to navigate the page to
  timeout (number, optional): maximum wait time in milliseconds`,
	},
	{
		Name:        "new_page",
		Description: "Creates a new page",
		Detail: `Parameters:
  url (string, required): URL to load in a new page
  timeout (number, optional): maximum wait time in milliseconds`,
	},
	{
		Name:        "performance_analyze_insight",
		Description: "Provides more detailed information on a specific Performance Insight that was highlighted in the results of a trace recording.",
		Detail: `Parameters:
  insightName (string, required): the name of the Insight you want more information on, e.g. "DocumentLatency" or "LCPBreakdown"`,
	},
	{
		Name:        "performance_start_trace",
		Description: "Starts a performance trace recording on the selected page. Reports Core Web Vitals (CWV) scores and performance insights for the page.",
		Detail: `Parameters:
  reload (boolean, required): whether to reload the page once tracing has started
  autoStop (boolean, required): whether to stop the trace recording automatically`,
	},
	{
		Name:        "performance_stop_trace",
		Description: "Stops the active performance trace recording on the selected page.",
		Detail:      "Parameters: none",
	},
	{
		Name:        "press_key",
		Description: "Press a key or key combination. Use this when other input methods like fill() cannot be used (e.g., keyboard shortcuts, navigation keys, or special key combinations).",
		Detail: `Parameters:
  key (string, required): a key or a combination, e.g. "Enter", "Control+A", "Control+Shift+R"`,
	},
	{
		Name:        "resize_page",
		Description: "Resizes the selected page's window so that the page has the specified dimensions",
		Detail: `Parameters:
  width (number, required): page width
  height (number, required): page height`,
	},
	{
		Name:        "select_page",
		Description: "Select a page as a context for future tool calls.",
		Detail: `Parameters:
  pageIdx (number, required): the index of the page to select. Call list_pages to list pages.`,
	},
	{
		Name:        "take_screenshot",
		Description: "Take a screenshot of the page or element.",
		Detail: `Parameters:
  format (string, optional): "png", "jpeg" or "webp". Default is "png".
  quality (number, optional): compression quality for jpeg and webp, 0 to 100
  uid (string, optional): the uid of an element to screenshot instead of the whole page
  fullPage (boolean, optional): screenshot the full page instead of the visible viewport
  filePath (string, optional): save the screenshot to this path instead of attaching it`,
	},
	{
		Name:        "take_snapshot",
		Description: "Take a text snapshot of the currently selected page based on the a11y tree. The snapshot lists page elements along with a unique identifier (uid).",
		Detail: `Parameters:
  verbose (boolean, optional): include all information available in the a11y tree`,
	},
	{
		Name:        "upload_file",
		Description: "Upload a file through a provided element.",
		Detail: `Parameters:
  uid (string, required): the uid of the file input element or an element that opens a file chooser
  filePath (string, required): the local path of the file to upload`,
	},
	{
		Name:        "wait_for",
		Description: "Wait for the specified text to appear on the selected page.",
		Detail: `Parameters:
  text (string, required): text to appear on the page
  timeout (number, optional): maximum wait time in milliseconds`,
	},
}

// snapshotCommands act on elements by uid, so the companion must hold a
// current snapshot before they run.
var snapshotCommands = map[string]struct{}{
	"click":         {},
	"drag":          {},
	"fill":          {},
	"fill_form":     {},
	"handle_dialog": {},
	"hover":         {},
	"press_key":     {},
	"upload_file":   {},
}

// Commands returns the supported commands in display order.
func Commands() []Command {
	return slices.Clone(commands)
}

// Names returns the supported command names in display order.
func Names() []string {
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name
	}
	return names
}

// Lookup finds a command by name, ignoring surrounding whitespace.
func Lookup(name string) (Command, bool) {
	name = strings.TrimSpace(name)
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}

// RequiresSnapshot reports whether name must be preceded by SnapshotTool.
func RequiresSnapshot(name string) bool {
	_, ok := snapshotCommands[name]
	return ok
}

// SnapshotCommands returns the snapshot-dependent command names, sorted.
func SnapshotCommands() []string {
	names := make([]string, 0, len(snapshotCommands))
	for name := range snapshotCommands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
