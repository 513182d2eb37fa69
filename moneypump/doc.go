// Package moneypump computes money-pump statistics: how much a cyclical
// arbitrageur could extract by walking every elementary cycle with at
// least one strict edge, averaged over all such cycles. It runs
// cycles.Johnson without removal, since every elementary cycle (not just a
// cycle-breaking cover) is needed.
//
// Each graph edge's weight already equals p_t·(x_t-x_u)/(p_t·x_t), so a
// cycle's money-pump ratios reduce to arithmetic over Graph.Weight and
// Graph.Income directly — no access to the original P,Q matrices is
// needed here.
package moneypump
