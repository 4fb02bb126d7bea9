package rop

import (
	"strings"

	"github.com/opforge/fbxexport/fbxsdk"
	"github.com/opforge/fbxexport/opnet"
)

// Action is deferred work that needs the whole scene to exist first.
type Action interface {
	PerformAction()
}

type ActionManager struct {
	queue     []Action
	performed bool
}

func NewActionManager() *ActionManager { return &ActionManager{} }

func (am *ActionManager) QueuePostAction(a Action) {
	am.queue = append(am.queue, a)
}

// PerformPostActions runs the queued actions once, in queue order.
func (am *ActionManager) PerformPostActions() {
	if am.performed {
		return
	}
	am.performed = true
	for _, a := range am.queue {
		a.PerformAction()
	}
}

type instanceBinding struct {
	op  *opnet.Node
	fbx *fbxsdk.Node
}

// CreateInstancesAction resolves instance targets after every node has
// been created, so forward references work. Instanced geometry shares
// the target's mesh attribute instead of copying it.
type CreateInstancesAction struct {
	director *opnet.Director
	nm       *NodeManager
	errors   *ErrorManager
	bindings []instanceBinding
}

func NewCreateInstancesAction(d *opnet.Director, nm *NodeManager, em *ErrorManager) *CreateInstancesAction {
	return &CreateInstancesAction{director: d, nm: nm, errors: em}
}

func (a *CreateInstancesAction) AddInstance(op *opnet.Node, fbx *fbxsdk.Node) {
	a.bindings = append(a.bindings, instanceBinding{op: op, fbx: fbx})
}

func (a *CreateInstancesAction) resolveTarget(op *opnet.Node) *opnet.Node {
	path := op.InstancePath
	if path == "" {
		return nil
	}
	if !strings.HasPrefix(path, "/") && op.Parent() != nil {
		path = op.Parent().FullPath() + "/" + path
	}
	return a.director.FindNode(path)
}

func (a *CreateInstancesAction) PerformAction() {
	for _, b := range a.bindings {
		target := a.resolveTarget(b.op)
		if target == nil {
			a.errors.AddErrorf("Could not resolve instanced object [ %s ] on [ %s ]",
				b.op.InstancePath, b.op.FullPath())
			continue
		}
		targetFbx := a.nm.FindFbxNode(target)
		if targetFbx == nil || targetFbx.NodeAttribute() == nil {
			a.errors.AddErrorf("Instanced object [ %s ] was not exported", target.FullPath())
			continue
		}
		b.fbx.SetNodeAttribute(targetFbx.NodeAttribute())
	}
}
