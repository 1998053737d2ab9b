package urdf

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// buildTree resolves every joint's parent and child link references,
// wires up the parent/child adjacency, assigns each link a zero-based
// index in lexicographic name order, and collects the roots.
//
// If two joints claim the same child link, the later one (in
// lexicographic joint-name order) silently overwrites the earlier
// parent assignment. Cycles are only detected indirectly, when they
// leave the model with no root at all.
func (p *parser) buildTree(model *Model) error {
	for _, name := range model.SortedJointNames() {
		joint := model.Joints[name]

		if joint.ParentLinkName == "" || joint.ChildLinkName == "" {
			return errors.Wrapf(ErrUnknownLink,
				"parent or child link is empty for joint %q", joint.Name)
		}

		childLink, ok := model.Links[joint.ChildLinkName]
		if !ok {
			return errors.Wrapf(ErrUnknownLink,
				"child %q for joint %q", joint.ChildLinkName, joint.Name)
		}
		parentLink, ok := model.Links[joint.ParentLinkName]
		if !ok {
			return errors.Wrapf(ErrUnknownLink,
				"parent %q for joint %q", joint.ParentLinkName, joint.Name)
		}

		childLink.ParentLink = parentLink
		childLink.ParentJoint = joint
		parentLink.ChildJoints = append(parentLink.ChildJoints, joint)
		parentLink.ChildLinks = append(parentLink.ChildLinks, childLink)
	}

	for index, name := range model.SortedLinkNames() {
		link := model.Links[name]
		link.Index = index
		model.LinkNames[index] = name

		if link.ParentLink == nil {
			model.RootLinks = append(model.RootLinks, link)
		}
	}

	if len(model.RootLinks) > 1 {
		names := make([]string, len(model.RootLinks))
		for i, root := range model.RootLinks {
			names[i] = root.Name
		}
		p.log.Warn("robot description has multiple root links",
			zap.Strings("roots", names))
	}
	if len(model.RootLinks) == 0 {
		return ErrNoRootLink
	}
	return nil
}
