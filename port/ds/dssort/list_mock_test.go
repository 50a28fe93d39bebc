package dssort_test

import (
	"iter"
	"reflect"

	"github.com/golang/mock/gomock"

	"oxcart/port/ds"
)

// MockList is a gomock double of ds.List[int].
type MockList struct {
	ctrl     *gomock.Controller
	recorder *MockListMockRecorder
}

var _ ds.List[int] = &MockList{}

type MockListMockRecorder struct {
	mock *MockList
}

func NewMockList(ctrl *gomock.Controller) *MockList {
	mock := &MockList{ctrl: ctrl}
	mock.recorder = &MockListMockRecorder{mock}
	return mock
}

func (m *MockList) EXPECT() *MockListMockRecorder {
	return m.recorder
}

func (m *MockList) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockListMockRecorder) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockList)(nil).Len))
}

func (m *MockList) Values() iter.Seq[int] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Values")
	ret0, _ := ret[0].(iter.Seq[int])
	return ret0
}

func (mr *MockListMockRecorder) Values() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Values", reflect.TypeOf((*MockList)(nil).Values))
}

func (m *MockList) Get(index int) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", index)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockListMockRecorder) Get(index interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockList)(nil).Get), index)
}

func (m *MockList) Ref(index int) (*int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ref", index)
	ret0, _ := ret[0].(*int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockListMockRecorder) Ref(index interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ref", reflect.TypeOf((*MockList)(nil).Ref), index)
}

func (m *MockList) Set(index, v int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", index, v)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockListMockRecorder) Set(index, v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockList)(nil).Set), index, v)
}

func (m *MockList) Insert(index, v int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", index, v)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockListMockRecorder) Insert(index, v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockList)(nil).Insert), index, v)
}

func (m *MockList) Remove(index int) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", index)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockListMockRecorder) Remove(index interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockList)(nil).Remove), index)
}

func (m *MockList) Append(vs ...int) {
	m.ctrl.T.Helper()
	varargs := []interface{}{}
	for _, a := range vs {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Append", varargs...)
}

func (mr *MockListMockRecorder) Append(vs ...interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockList)(nil).Append), vs...)
}

func (m *MockList) Swap(i, j int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Swap", i, j)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockListMockRecorder) Swap(i, j interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Swap", reflect.TypeOf((*MockList)(nil).Swap), i, j)
}

func (m *MockList) Contains(v int) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Contains", v)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockListMockRecorder) Contains(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Contains", reflect.TypeOf((*MockList)(nil).Contains), v)
}

func (m *MockList) Find(v int) (int, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Find", v)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

func (mr *MockListMockRecorder) Find(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Find", reflect.TypeOf((*MockList)(nil).Find), v)
}

func (m *MockList) FindAll(v int) []int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindAll", v)
	ret0, _ := ret[0].([]int)
	return ret0
}

func (mr *MockListMockRecorder) FindAll(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindAll", reflect.TypeOf((*MockList)(nil).FindAll), v)
}

func (m *MockList) Count(v int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", v)
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockListMockRecorder) Count(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockList)(nil).Count), v)
}

func (m *MockList) Clear() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Clear")
}

func (mr *MockListMockRecorder) Clear() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockList)(nil).Clear))
}
