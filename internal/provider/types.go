package provider

// Environment statuses as reported by the provider. Only running
// environments carry inventoried nodes.
const StatusRunning = 1

// Environment is one provisioned application instance.
type Environment struct {
	Domain      string `json:"domain"`
	ShortDomain string `json:"shortdomain"`
	UID         int    `json:"uid"`
	Status      int    `json:"status"`
}

// Node is a single compute instance inside an environment. Address is
// empty when the provider reports it as null or omits it.
type Node struct {
	ID       int    `json:"id"`
	Address  string `json:"address"`
	NodeType string `json:"nodeType"`
}

// EnvironmentInfo pairs an environment with its nodes, the shape the
// getenvs endpoint returns per entry.
type EnvironmentInfo struct {
	Env   Environment `json:"env"`
	Nodes []Node      `json:"nodes"`
}

// Session is the scoped credential returned by signin. It must be released
// with Signout on every path that acquired it.
type Session struct {
	ID string
}

type signinResponse struct {
	Result  int    `json:"result"`
	Error   string `json:"error"`
	Session string `json:"session"`
}

type signoutResponse struct {
	Result int    `json:"result"`
	Error  string `json:"error"`
}

type envsResponse struct {
	Result int               `json:"result"`
	Error  string            `json:"error"`
	Infos  []EnvironmentInfo `json:"infos"`
}
