package cpu

import "github.com/valerio/go-dotmatrix/dotmatrix/bit"

//RLC B
//#0x00:
func opcodeCB0x00(cpu *CPU) {
	cpu.rlc(&cpu.b)
}

//RLC C
//#0x01:
func opcodeCB0x01(cpu *CPU) {
	cpu.rlc(&cpu.c)
}

//RLC D
//#0x02:
func opcodeCB0x02(cpu *CPU) {
	cpu.rlc(&cpu.d)
}

//RLC E
//#0x03:
func opcodeCB0x03(cpu *CPU) {
	cpu.rlc(&cpu.e)
}

//RLC H
//#0x04:
func opcodeCB0x04(cpu *CPU) {
	cpu.rlc(&cpu.h)
}

//RLC L
//#0x05:
func opcodeCB0x05(cpu *CPU) {
	cpu.rlc(&cpu.l)
}

//RLC (HL)
//#0x06:
func opcodeCB0x06(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.rlc(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//RLC A
//#0x07:
func opcodeCB0x07(cpu *CPU) {
	cpu.rlc(&cpu.a)
}

//RRC B
//#0x08:
func opcodeCB0x08(cpu *CPU) {
	cpu.rrc(&cpu.b)
}

//RRC C
//#0x09:
func opcodeCB0x09(cpu *CPU) {
	cpu.rrc(&cpu.c)
}

//RRC D
//#0x0A:
func opcodeCB0x0A(cpu *CPU) {
	cpu.rrc(&cpu.d)
}

//RRC E
//#0x0B:
func opcodeCB0x0B(cpu *CPU) {
	cpu.rrc(&cpu.e)
}

//RRC H
//#0x0C:
func opcodeCB0x0C(cpu *CPU) {
	cpu.rrc(&cpu.h)
}

//RRC L
//#0x0D:
func opcodeCB0x0D(cpu *CPU) {
	cpu.rrc(&cpu.l)
}

//RRC (HL)
//#0x0E:
func opcodeCB0x0E(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.rrc(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//RRC A
//#0x0F:
func opcodeCB0x0F(cpu *CPU) {
	cpu.rrc(&cpu.a)
}

//RL B
//#0x10:
func opcodeCB0x10(cpu *CPU) {
	cpu.rl(&cpu.b)
}

//RL C
//#0x11:
func opcodeCB0x11(cpu *CPU) {
	cpu.rl(&cpu.c)
}

//RL D
//#0x12:
func opcodeCB0x12(cpu *CPU) {
	cpu.rl(&cpu.d)
}

//RL E
//#0x13:
func opcodeCB0x13(cpu *CPU) {
	cpu.rl(&cpu.e)
}

//RL H
//#0x14:
func opcodeCB0x14(cpu *CPU) {
	cpu.rl(&cpu.h)
}

//RL L
//#0x15:
func opcodeCB0x15(cpu *CPU) {
	cpu.rl(&cpu.l)
}

//RL (HL)
//#0x16:
func opcodeCB0x16(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.rl(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//RL A
//#0x17:
func opcodeCB0x17(cpu *CPU) {
	cpu.rl(&cpu.a)
}

//RR B
//#0x18:
func opcodeCB0x18(cpu *CPU) {
	cpu.rr(&cpu.b)
}

//RR C
//#0x19:
func opcodeCB0x19(cpu *CPU) {
	cpu.rr(&cpu.c)
}

//RR D
//#0x1A:
func opcodeCB0x1A(cpu *CPU) {
	cpu.rr(&cpu.d)
}

//RR E
//#0x1B:
func opcodeCB0x1B(cpu *CPU) {
	cpu.rr(&cpu.e)
}

//RR H
//#0x1C:
func opcodeCB0x1C(cpu *CPU) {
	cpu.rr(&cpu.h)
}

//RR L
//#0x1D:
func opcodeCB0x1D(cpu *CPU) {
	cpu.rr(&cpu.l)
}

//RR (HL)
//#0x1E:
func opcodeCB0x1E(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.rr(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//RR A
//#0x1F:
func opcodeCB0x1F(cpu *CPU) {
	cpu.rr(&cpu.a)
}

//SLA B
//#0x20:
func opcodeCB0x20(cpu *CPU) {
	cpu.sla(&cpu.b)
}

//SLA C
//#0x21:
func opcodeCB0x21(cpu *CPU) {
	cpu.sla(&cpu.c)
}

//SLA D
//#0x22:
func opcodeCB0x22(cpu *CPU) {
	cpu.sla(&cpu.d)
}

//SLA E
//#0x23:
func opcodeCB0x23(cpu *CPU) {
	cpu.sla(&cpu.e)
}

//SLA H
//#0x24:
func opcodeCB0x24(cpu *CPU) {
	cpu.sla(&cpu.h)
}

//SLA L
//#0x25:
func opcodeCB0x25(cpu *CPU) {
	cpu.sla(&cpu.l)
}

//SLA (HL)
//#0x26:
func opcodeCB0x26(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.sla(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//SLA A
//#0x27:
func opcodeCB0x27(cpu *CPU) {
	cpu.sla(&cpu.a)
}

//SRA B
//#0x28:
func opcodeCB0x28(cpu *CPU) {
	cpu.sra(&cpu.b)
}

//SRA C
//#0x29:
func opcodeCB0x29(cpu *CPU) {
	cpu.sra(&cpu.c)
}

//SRA D
//#0x2A:
func opcodeCB0x2A(cpu *CPU) {
	cpu.sra(&cpu.d)
}

//SRA E
//#0x2B:
func opcodeCB0x2B(cpu *CPU) {
	cpu.sra(&cpu.e)
}

//SRA H
//#0x2C:
func opcodeCB0x2C(cpu *CPU) {
	cpu.sra(&cpu.h)
}

//SRA L
//#0x2D:
func opcodeCB0x2D(cpu *CPU) {
	cpu.sra(&cpu.l)
}

//SRA (HL)
//#0x2E:
func opcodeCB0x2E(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.sra(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//SRA A
//#0x2F:
func opcodeCB0x2F(cpu *CPU) {
	cpu.sra(&cpu.a)
}

//SWAP B
//#0x30:
func opcodeCB0x30(cpu *CPU) {
	cpu.swap(&cpu.b)
}

//SWAP C
//#0x31:
func opcodeCB0x31(cpu *CPU) {
	cpu.swap(&cpu.c)
}

//SWAP D
//#0x32:
func opcodeCB0x32(cpu *CPU) {
	cpu.swap(&cpu.d)
}

//SWAP E
//#0x33:
func opcodeCB0x33(cpu *CPU) {
	cpu.swap(&cpu.e)
}

//SWAP H
//#0x34:
func opcodeCB0x34(cpu *CPU) {
	cpu.swap(&cpu.h)
}

//SWAP L
//#0x35:
func opcodeCB0x35(cpu *CPU) {
	cpu.swap(&cpu.l)
}

//SWAP (HL)
//#0x36:
func opcodeCB0x36(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.swap(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//SWAP A
//#0x37:
func opcodeCB0x37(cpu *CPU) {
	cpu.swap(&cpu.a)
}

//SRL B
//#0x38:
func opcodeCB0x38(cpu *CPU) {
	cpu.srl(&cpu.b)
}

//SRL C
//#0x39:
func opcodeCB0x39(cpu *CPU) {
	cpu.srl(&cpu.c)
}

//SRL D
//#0x3A:
func opcodeCB0x3A(cpu *CPU) {
	cpu.srl(&cpu.d)
}

//SRL E
//#0x3B:
func opcodeCB0x3B(cpu *CPU) {
	cpu.srl(&cpu.e)
}

//SRL H
//#0x3C:
func opcodeCB0x3C(cpu *CPU) {
	cpu.srl(&cpu.h)
}

//SRL L
//#0x3D:
func opcodeCB0x3D(cpu *CPU) {
	cpu.srl(&cpu.l)
}

//SRL (HL)
//#0x3E:
func opcodeCB0x3E(cpu *CPU) {
	value := cpu.readByte(cpu.getHL())
	cpu.srl(&value)
	cpu.writeByte(cpu.getHL(), value)
}

//SRL A
//#0x3F:
func opcodeCB0x3F(cpu *CPU) {
	cpu.srl(&cpu.a)
}

//BIT 0, B
//#0x40:
func opcodeCB0x40(cpu *CPU) {
	cpu.bitTest(0, cpu.b)
}

//BIT 0, C
//#0x41:
func opcodeCB0x41(cpu *CPU) {
	cpu.bitTest(0, cpu.c)
}

//BIT 0, D
//#0x42:
func opcodeCB0x42(cpu *CPU) {
	cpu.bitTest(0, cpu.d)
}

//BIT 0, E
//#0x43:
func opcodeCB0x43(cpu *CPU) {
	cpu.bitTest(0, cpu.e)
}

//BIT 0, H
//#0x44:
func opcodeCB0x44(cpu *CPU) {
	cpu.bitTest(0, cpu.h)
}

//BIT 0, L
//#0x45:
func opcodeCB0x45(cpu *CPU) {
	cpu.bitTest(0, cpu.l)
}

//BIT 0, (HL)
//#0x46:
func opcodeCB0x46(cpu *CPU) {
	cpu.bitTest(0, cpu.readByte(cpu.getHL()))
}

//BIT 0, A
//#0x47:
func opcodeCB0x47(cpu *CPU) {
	cpu.bitTest(0, cpu.a)
}

//BIT 1, B
//#0x48:
func opcodeCB0x48(cpu *CPU) {
	cpu.bitTest(1, cpu.b)
}

//BIT 1, C
//#0x49:
func opcodeCB0x49(cpu *CPU) {
	cpu.bitTest(1, cpu.c)
}

//BIT 1, D
//#0x4A:
func opcodeCB0x4A(cpu *CPU) {
	cpu.bitTest(1, cpu.d)
}

//BIT 1, E
//#0x4B:
func opcodeCB0x4B(cpu *CPU) {
	cpu.bitTest(1, cpu.e)
}

//BIT 1, H
//#0x4C:
func opcodeCB0x4C(cpu *CPU) {
	cpu.bitTest(1, cpu.h)
}

//BIT 1, L
//#0x4D:
func opcodeCB0x4D(cpu *CPU) {
	cpu.bitTest(1, cpu.l)
}

//BIT 1, (HL)
//#0x4E:
func opcodeCB0x4E(cpu *CPU) {
	cpu.bitTest(1, cpu.readByte(cpu.getHL()))
}

//BIT 1, A
//#0x4F:
func opcodeCB0x4F(cpu *CPU) {
	cpu.bitTest(1, cpu.a)
}

//BIT 2, B
//#0x50:
func opcodeCB0x50(cpu *CPU) {
	cpu.bitTest(2, cpu.b)
}

//BIT 2, C
//#0x51:
func opcodeCB0x51(cpu *CPU) {
	cpu.bitTest(2, cpu.c)
}

//BIT 2, D
//#0x52:
func opcodeCB0x52(cpu *CPU) {
	cpu.bitTest(2, cpu.d)
}

//BIT 2, E
//#0x53:
func opcodeCB0x53(cpu *CPU) {
	cpu.bitTest(2, cpu.e)
}

//BIT 2, H
//#0x54:
func opcodeCB0x54(cpu *CPU) {
	cpu.bitTest(2, cpu.h)
}

//BIT 2, L
//#0x55:
func opcodeCB0x55(cpu *CPU) {
	cpu.bitTest(2, cpu.l)
}

//BIT 2, (HL)
//#0x56:
func opcodeCB0x56(cpu *CPU) {
	cpu.bitTest(2, cpu.readByte(cpu.getHL()))
}

//BIT 2, A
//#0x57:
func opcodeCB0x57(cpu *CPU) {
	cpu.bitTest(2, cpu.a)
}

//BIT 3, B
//#0x58:
func opcodeCB0x58(cpu *CPU) {
	cpu.bitTest(3, cpu.b)
}

//BIT 3, C
//#0x59:
func opcodeCB0x59(cpu *CPU) {
	cpu.bitTest(3, cpu.c)
}

//BIT 3, D
//#0x5A:
func opcodeCB0x5A(cpu *CPU) {
	cpu.bitTest(3, cpu.d)
}

//BIT 3, E
//#0x5B:
func opcodeCB0x5B(cpu *CPU) {
	cpu.bitTest(3, cpu.e)
}

//BIT 3, H
//#0x5C:
func opcodeCB0x5C(cpu *CPU) {
	cpu.bitTest(3, cpu.h)
}

//BIT 3, L
//#0x5D:
func opcodeCB0x5D(cpu *CPU) {
	cpu.bitTest(3, cpu.l)
}

//BIT 3, (HL)
//#0x5E:
func opcodeCB0x5E(cpu *CPU) {
	cpu.bitTest(3, cpu.readByte(cpu.getHL()))
}

//BIT 3, A
//#0x5F:
func opcodeCB0x5F(cpu *CPU) {
	cpu.bitTest(3, cpu.a)
}

//BIT 4, B
//#0x60:
func opcodeCB0x60(cpu *CPU) {
	cpu.bitTest(4, cpu.b)
}

//BIT 4, C
//#0x61:
func opcodeCB0x61(cpu *CPU) {
	cpu.bitTest(4, cpu.c)
}

//BIT 4, D
//#0x62:
func opcodeCB0x62(cpu *CPU) {
	cpu.bitTest(4, cpu.d)
}

//BIT 4, E
//#0x63:
func opcodeCB0x63(cpu *CPU) {
	cpu.bitTest(4, cpu.e)
}

//BIT 4, H
//#0x64:
func opcodeCB0x64(cpu *CPU) {
	cpu.bitTest(4, cpu.h)
}

//BIT 4, L
//#0x65:
func opcodeCB0x65(cpu *CPU) {
	cpu.bitTest(4, cpu.l)
}

//BIT 4, (HL)
//#0x66:
func opcodeCB0x66(cpu *CPU) {
	cpu.bitTest(4, cpu.readByte(cpu.getHL()))
}

//BIT 4, A
//#0x67:
func opcodeCB0x67(cpu *CPU) {
	cpu.bitTest(4, cpu.a)
}

//BIT 5, B
//#0x68:
func opcodeCB0x68(cpu *CPU) {
	cpu.bitTest(5, cpu.b)
}

//BIT 5, C
//#0x69:
func opcodeCB0x69(cpu *CPU) {
	cpu.bitTest(5, cpu.c)
}

//BIT 5, D
//#0x6A:
func opcodeCB0x6A(cpu *CPU) {
	cpu.bitTest(5, cpu.d)
}

//BIT 5, E
//#0x6B:
func opcodeCB0x6B(cpu *CPU) {
	cpu.bitTest(5, cpu.e)
}

//BIT 5, H
//#0x6C:
func opcodeCB0x6C(cpu *CPU) {
	cpu.bitTest(5, cpu.h)
}

//BIT 5, L
//#0x6D:
func opcodeCB0x6D(cpu *CPU) {
	cpu.bitTest(5, cpu.l)
}

//BIT 5, (HL)
//#0x6E:
func opcodeCB0x6E(cpu *CPU) {
	cpu.bitTest(5, cpu.readByte(cpu.getHL()))
}

//BIT 5, A
//#0x6F:
func opcodeCB0x6F(cpu *CPU) {
	cpu.bitTest(5, cpu.a)
}

//BIT 6, B
//#0x70:
func opcodeCB0x70(cpu *CPU) {
	cpu.bitTest(6, cpu.b)
}

//BIT 6, C
//#0x71:
func opcodeCB0x71(cpu *CPU) {
	cpu.bitTest(6, cpu.c)
}

//BIT 6, D
//#0x72:
func opcodeCB0x72(cpu *CPU) {
	cpu.bitTest(6, cpu.d)
}

//BIT 6, E
//#0x73:
func opcodeCB0x73(cpu *CPU) {
	cpu.bitTest(6, cpu.e)
}

//BIT 6, H
//#0x74:
func opcodeCB0x74(cpu *CPU) {
	cpu.bitTest(6, cpu.h)
}

//BIT 6, L
//#0x75:
func opcodeCB0x75(cpu *CPU) {
	cpu.bitTest(6, cpu.l)
}

//BIT 6, (HL)
//#0x76:
func opcodeCB0x76(cpu *CPU) {
	cpu.bitTest(6, cpu.readByte(cpu.getHL()))
}

//BIT 6, A
//#0x77:
func opcodeCB0x77(cpu *CPU) {
	cpu.bitTest(6, cpu.a)
}

//BIT 7, B
//#0x78:
func opcodeCB0x78(cpu *CPU) {
	cpu.bitTest(7, cpu.b)
}

//BIT 7, C
//#0x79:
func opcodeCB0x79(cpu *CPU) {
	cpu.bitTest(7, cpu.c)
}

//BIT 7, D
//#0x7A:
func opcodeCB0x7A(cpu *CPU) {
	cpu.bitTest(7, cpu.d)
}

//BIT 7, E
//#0x7B:
func opcodeCB0x7B(cpu *CPU) {
	cpu.bitTest(7, cpu.e)
}

//BIT 7, H
//#0x7C:
func opcodeCB0x7C(cpu *CPU) {
	cpu.bitTest(7, cpu.h)
}

//BIT 7, L
//#0x7D:
func opcodeCB0x7D(cpu *CPU) {
	cpu.bitTest(7, cpu.l)
}

//BIT 7, (HL)
//#0x7E:
func opcodeCB0x7E(cpu *CPU) {
	cpu.bitTest(7, cpu.readByte(cpu.getHL()))
}

//BIT 7, A
//#0x7F:
func opcodeCB0x7F(cpu *CPU) {
	cpu.bitTest(7, cpu.a)
}

//RES 0, B
//#0x80:
func opcodeCB0x80(cpu *CPU) {
	cpu.b = bit.Reset(0, cpu.b)
}

//RES 0, C
//#0x81:
func opcodeCB0x81(cpu *CPU) {
	cpu.c = bit.Reset(0, cpu.c)
}

//RES 0, D
//#0x82:
func opcodeCB0x82(cpu *CPU) {
	cpu.d = bit.Reset(0, cpu.d)
}

//RES 0, E
//#0x83:
func opcodeCB0x83(cpu *CPU) {
	cpu.e = bit.Reset(0, cpu.e)
}

//RES 0, H
//#0x84:
func opcodeCB0x84(cpu *CPU) {
	cpu.h = bit.Reset(0, cpu.h)
}

//RES 0, L
//#0x85:
func opcodeCB0x85(cpu *CPU) {
	cpu.l = bit.Reset(0, cpu.l)
}

//RES 0, (HL)
//#0x86:
func opcodeCB0x86(cpu *CPU) {
	value := bit.Reset(0, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//RES 0, A
//#0x87:
func opcodeCB0x87(cpu *CPU) {
	cpu.a = bit.Reset(0, cpu.a)
}

//RES 1, B
//#0x88:
func opcodeCB0x88(cpu *CPU) {
	cpu.b = bit.Reset(1, cpu.b)
}

//RES 1, C
//#0x89:
func opcodeCB0x89(cpu *CPU) {
	cpu.c = bit.Reset(1, cpu.c)
}

//RES 1, D
//#0x8A:
func opcodeCB0x8A(cpu *CPU) {
	cpu.d = bit.Reset(1, cpu.d)
}

//RES 1, E
//#0x8B:
func opcodeCB0x8B(cpu *CPU) {
	cpu.e = bit.Reset(1, cpu.e)
}

//RES 1, H
//#0x8C:
func opcodeCB0x8C(cpu *CPU) {
	cpu.h = bit.Reset(1, cpu.h)
}

//RES 1, L
//#0x8D:
func opcodeCB0x8D(cpu *CPU) {
	cpu.l = bit.Reset(1, cpu.l)
}

//RES 1, (HL)
//#0x8E:
func opcodeCB0x8E(cpu *CPU) {
	value := bit.Reset(1, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//RES 1, A
//#0x8F:
func opcodeCB0x8F(cpu *CPU) {
	cpu.a = bit.Reset(1, cpu.a)
}

//RES 2, B
//#0x90:
func opcodeCB0x90(cpu *CPU) {
	cpu.b = bit.Reset(2, cpu.b)
}

//RES 2, C
//#0x91:
func opcodeCB0x91(cpu *CPU) {
	cpu.c = bit.Reset(2, cpu.c)
}

//RES 2, D
//#0x92:
func opcodeCB0x92(cpu *CPU) {
	cpu.d = bit.Reset(2, cpu.d)
}

//RES 2, E
//#0x93:
func opcodeCB0x93(cpu *CPU) {
	cpu.e = bit.Reset(2, cpu.e)
}

//RES 2, H
//#0x94:
func opcodeCB0x94(cpu *CPU) {
	cpu.h = bit.Reset(2, cpu.h)
}

//RES 2, L
//#0x95:
func opcodeCB0x95(cpu *CPU) {
	cpu.l = bit.Reset(2, cpu.l)
}

//RES 2, (HL)
//#0x96:
func opcodeCB0x96(cpu *CPU) {
	value := bit.Reset(2, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//RES 2, A
//#0x97:
func opcodeCB0x97(cpu *CPU) {
	cpu.a = bit.Reset(2, cpu.a)
}

//RES 3, B
//#0x98:
func opcodeCB0x98(cpu *CPU) {
	cpu.b = bit.Reset(3, cpu.b)
}

//RES 3, C
//#0x99:
func opcodeCB0x99(cpu *CPU) {
	cpu.c = bit.Reset(3, cpu.c)
}

//RES 3, D
//#0x9A:
func opcodeCB0x9A(cpu *CPU) {
	cpu.d = bit.Reset(3, cpu.d)
}

//RES 3, E
//#0x9B:
func opcodeCB0x9B(cpu *CPU) {
	cpu.e = bit.Reset(3, cpu.e)
}

//RES 3, H
//#0x9C:
func opcodeCB0x9C(cpu *CPU) {
	cpu.h = bit.Reset(3, cpu.h)
}

//RES 3, L
//#0x9D:
func opcodeCB0x9D(cpu *CPU) {
	cpu.l = bit.Reset(3, cpu.l)
}

//RES 3, (HL)
//#0x9E:
func opcodeCB0x9E(cpu *CPU) {
	value := bit.Reset(3, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//RES 3, A
//#0x9F:
func opcodeCB0x9F(cpu *CPU) {
	cpu.a = bit.Reset(3, cpu.a)
}

//RES 4, B
//#0xA0:
func opcodeCB0xA0(cpu *CPU) {
	cpu.b = bit.Reset(4, cpu.b)
}

//RES 4, C
//#0xA1:
func opcodeCB0xA1(cpu *CPU) {
	cpu.c = bit.Reset(4, cpu.c)
}

//RES 4, D
//#0xA2:
func opcodeCB0xA2(cpu *CPU) {
	cpu.d = bit.Reset(4, cpu.d)
}

//RES 4, E
//#0xA3:
func opcodeCB0xA3(cpu *CPU) {
	cpu.e = bit.Reset(4, cpu.e)
}

//RES 4, H
//#0xA4:
func opcodeCB0xA4(cpu *CPU) {
	cpu.h = bit.Reset(4, cpu.h)
}

//RES 4, L
//#0xA5:
func opcodeCB0xA5(cpu *CPU) {
	cpu.l = bit.Reset(4, cpu.l)
}

//RES 4, (HL)
//#0xA6:
func opcodeCB0xA6(cpu *CPU) {
	value := bit.Reset(4, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//RES 4, A
//#0xA7:
func opcodeCB0xA7(cpu *CPU) {
	cpu.a = bit.Reset(4, cpu.a)
}

//RES 5, B
//#0xA8:
func opcodeCB0xA8(cpu *CPU) {
	cpu.b = bit.Reset(5, cpu.b)
}

//RES 5, C
//#0xA9:
func opcodeCB0xA9(cpu *CPU) {
	cpu.c = bit.Reset(5, cpu.c)
}

//RES 5, D
//#0xAA:
func opcodeCB0xAA(cpu *CPU) {
	cpu.d = bit.Reset(5, cpu.d)
}

//RES 5, E
//#0xAB:
func opcodeCB0xAB(cpu *CPU) {
	cpu.e = bit.Reset(5, cpu.e)
}

//RES 5, H
//#0xAC:
func opcodeCB0xAC(cpu *CPU) {
	cpu.h = bit.Reset(5, cpu.h)
}

//RES 5, L
//#0xAD:
func opcodeCB0xAD(cpu *CPU) {
	cpu.l = bit.Reset(5, cpu.l)
}

//RES 5, (HL)
//#0xAE:
func opcodeCB0xAE(cpu *CPU) {
	value := bit.Reset(5, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//RES 5, A
//#0xAF:
func opcodeCB0xAF(cpu *CPU) {
	cpu.a = bit.Reset(5, cpu.a)
}

//RES 6, B
//#0xB0:
func opcodeCB0xB0(cpu *CPU) {
	cpu.b = bit.Reset(6, cpu.b)
}

//RES 6, C
//#0xB1:
func opcodeCB0xB1(cpu *CPU) {
	cpu.c = bit.Reset(6, cpu.c)
}

//RES 6, D
//#0xB2:
func opcodeCB0xB2(cpu *CPU) {
	cpu.d = bit.Reset(6, cpu.d)
}

//RES 6, E
//#0xB3:
func opcodeCB0xB3(cpu *CPU) {
	cpu.e = bit.Reset(6, cpu.e)
}

//RES 6, H
//#0xB4:
func opcodeCB0xB4(cpu *CPU) {
	cpu.h = bit.Reset(6, cpu.h)
}

//RES 6, L
//#0xB5:
func opcodeCB0xB5(cpu *CPU) {
	cpu.l = bit.Reset(6, cpu.l)
}

//RES 6, (HL)
//#0xB6:
func opcodeCB0xB6(cpu *CPU) {
	value := bit.Reset(6, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//RES 6, A
//#0xB7:
func opcodeCB0xB7(cpu *CPU) {
	cpu.a = bit.Reset(6, cpu.a)
}

//RES 7, B
//#0xB8:
func opcodeCB0xB8(cpu *CPU) {
	cpu.b = bit.Reset(7, cpu.b)
}

//RES 7, C
//#0xB9:
func opcodeCB0xB9(cpu *CPU) {
	cpu.c = bit.Reset(7, cpu.c)
}

//RES 7, D
//#0xBA:
func opcodeCB0xBA(cpu *CPU) {
	cpu.d = bit.Reset(7, cpu.d)
}

//RES 7, E
//#0xBB:
func opcodeCB0xBB(cpu *CPU) {
	cpu.e = bit.Reset(7, cpu.e)
}

//RES 7, H
//#0xBC:
func opcodeCB0xBC(cpu *CPU) {
	cpu.h = bit.Reset(7, cpu.h)
}

//RES 7, L
//#0xBD:
func opcodeCB0xBD(cpu *CPU) {
	cpu.l = bit.Reset(7, cpu.l)
}

//RES 7, (HL)
//#0xBE:
func opcodeCB0xBE(cpu *CPU) {
	value := bit.Reset(7, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//RES 7, A
//#0xBF:
func opcodeCB0xBF(cpu *CPU) {
	cpu.a = bit.Reset(7, cpu.a)
}

//SET 0, B
//#0xC0:
func opcodeCB0xC0(cpu *CPU) {
	cpu.b = bit.Set(0, cpu.b)
}

//SET 0, C
//#0xC1:
func opcodeCB0xC1(cpu *CPU) {
	cpu.c = bit.Set(0, cpu.c)
}

//SET 0, D
//#0xC2:
func opcodeCB0xC2(cpu *CPU) {
	cpu.d = bit.Set(0, cpu.d)
}

//SET 0, E
//#0xC3:
func opcodeCB0xC3(cpu *CPU) {
	cpu.e = bit.Set(0, cpu.e)
}

//SET 0, H
//#0xC4:
func opcodeCB0xC4(cpu *CPU) {
	cpu.h = bit.Set(0, cpu.h)
}

//SET 0, L
//#0xC5:
func opcodeCB0xC5(cpu *CPU) {
	cpu.l = bit.Set(0, cpu.l)
}

//SET 0, (HL)
//#0xC6:
func opcodeCB0xC6(cpu *CPU) {
	value := bit.Set(0, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//SET 0, A
//#0xC7:
func opcodeCB0xC7(cpu *CPU) {
	cpu.a = bit.Set(0, cpu.a)
}

//SET 1, B
//#0xC8:
func opcodeCB0xC8(cpu *CPU) {
	cpu.b = bit.Set(1, cpu.b)
}

//SET 1, C
//#0xC9:
func opcodeCB0xC9(cpu *CPU) {
	cpu.c = bit.Set(1, cpu.c)
}

//SET 1, D
//#0xCA:
func opcodeCB0xCA(cpu *CPU) {
	cpu.d = bit.Set(1, cpu.d)
}

//SET 1, E
//#0xCB:
func opcodeCB0xCB(cpu *CPU) {
	cpu.e = bit.Set(1, cpu.e)
}

//SET 1, H
//#0xCC:
func opcodeCB0xCC(cpu *CPU) {
	cpu.h = bit.Set(1, cpu.h)
}

//SET 1, L
//#0xCD:
func opcodeCB0xCD(cpu *CPU) {
	cpu.l = bit.Set(1, cpu.l)
}

//SET 1, (HL)
//#0xCE:
func opcodeCB0xCE(cpu *CPU) {
	value := bit.Set(1, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//SET 1, A
//#0xCF:
func opcodeCB0xCF(cpu *CPU) {
	cpu.a = bit.Set(1, cpu.a)
}

//SET 2, B
//#0xD0:
func opcodeCB0xD0(cpu *CPU) {
	cpu.b = bit.Set(2, cpu.b)
}

//SET 2, C
//#0xD1:
func opcodeCB0xD1(cpu *CPU) {
	cpu.c = bit.Set(2, cpu.c)
}

//SET 2, D
//#0xD2:
func opcodeCB0xD2(cpu *CPU) {
	cpu.d = bit.Set(2, cpu.d)
}

//SET 2, E
//#0xD3:
func opcodeCB0xD3(cpu *CPU) {
	cpu.e = bit.Set(2, cpu.e)
}

//SET 2, H
//#0xD4:
func opcodeCB0xD4(cpu *CPU) {
	cpu.h = bit.Set(2, cpu.h)
}

//SET 2, L
//#0xD5:
func opcodeCB0xD5(cpu *CPU) {
	cpu.l = bit.Set(2, cpu.l)
}

//SET 2, (HL)
//#0xD6:
func opcodeCB0xD6(cpu *CPU) {
	value := bit.Set(2, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//SET 2, A
//#0xD7:
func opcodeCB0xD7(cpu *CPU) {
	cpu.a = bit.Set(2, cpu.a)
}

//SET 3, B
//#0xD8:
func opcodeCB0xD8(cpu *CPU) {
	cpu.b = bit.Set(3, cpu.b)
}

//SET 3, C
//#0xD9:
func opcodeCB0xD9(cpu *CPU) {
	cpu.c = bit.Set(3, cpu.c)
}

//SET 3, D
//#0xDA:
func opcodeCB0xDA(cpu *CPU) {
	cpu.d = bit.Set(3, cpu.d)
}

//SET 3, E
//#0xDB:
func opcodeCB0xDB(cpu *CPU) {
	cpu.e = bit.Set(3, cpu.e)
}

//SET 3, H
//#0xDC:
func opcodeCB0xDC(cpu *CPU) {
	cpu.h = bit.Set(3, cpu.h)
}

//SET 3, L
//#0xDD:
func opcodeCB0xDD(cpu *CPU) {
	cpu.l = bit.Set(3, cpu.l)
}

//SET 3, (HL)
//#0xDE:
func opcodeCB0xDE(cpu *CPU) {
	value := bit.Set(3, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//SET 3, A
//#0xDF:
func opcodeCB0xDF(cpu *CPU) {
	cpu.a = bit.Set(3, cpu.a)
}

//SET 4, B
//#0xE0:
func opcodeCB0xE0(cpu *CPU) {
	cpu.b = bit.Set(4, cpu.b)
}

//SET 4, C
//#0xE1:
func opcodeCB0xE1(cpu *CPU) {
	cpu.c = bit.Set(4, cpu.c)
}

//SET 4, D
//#0xE2:
func opcodeCB0xE2(cpu *CPU) {
	cpu.d = bit.Set(4, cpu.d)
}

//SET 4, E
//#0xE3:
func opcodeCB0xE3(cpu *CPU) {
	cpu.e = bit.Set(4, cpu.e)
}

//SET 4, H
//#0xE4:
func opcodeCB0xE4(cpu *CPU) {
	cpu.h = bit.Set(4, cpu.h)
}

//SET 4, L
//#0xE5:
func opcodeCB0xE5(cpu *CPU) {
	cpu.l = bit.Set(4, cpu.l)
}

//SET 4, (HL)
//#0xE6:
func opcodeCB0xE6(cpu *CPU) {
	value := bit.Set(4, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//SET 4, A
//#0xE7:
func opcodeCB0xE7(cpu *CPU) {
	cpu.a = bit.Set(4, cpu.a)
}

//SET 5, B
//#0xE8:
func opcodeCB0xE8(cpu *CPU) {
	cpu.b = bit.Set(5, cpu.b)
}

//SET 5, C
//#0xE9:
func opcodeCB0xE9(cpu *CPU) {
	cpu.c = bit.Set(5, cpu.c)
}

//SET 5, D
//#0xEA:
func opcodeCB0xEA(cpu *CPU) {
	cpu.d = bit.Set(5, cpu.d)
}

//SET 5, E
//#0xEB:
func opcodeCB0xEB(cpu *CPU) {
	cpu.e = bit.Set(5, cpu.e)
}

//SET 5, H
//#0xEC:
func opcodeCB0xEC(cpu *CPU) {
	cpu.h = bit.Set(5, cpu.h)
}

//SET 5, L
//#0xED:
func opcodeCB0xED(cpu *CPU) {
	cpu.l = bit.Set(5, cpu.l)
}

//SET 5, (HL)
//#0xEE:
func opcodeCB0xEE(cpu *CPU) {
	value := bit.Set(5, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//SET 5, A
//#0xEF:
func opcodeCB0xEF(cpu *CPU) {
	cpu.a = bit.Set(5, cpu.a)
}

//SET 6, B
//#0xF0:
func opcodeCB0xF0(cpu *CPU) {
	cpu.b = bit.Set(6, cpu.b)
}

//SET 6, C
//#0xF1:
func opcodeCB0xF1(cpu *CPU) {
	cpu.c = bit.Set(6, cpu.c)
}

//SET 6, D
//#0xF2:
func opcodeCB0xF2(cpu *CPU) {
	cpu.d = bit.Set(6, cpu.d)
}

//SET 6, E
//#0xF3:
func opcodeCB0xF3(cpu *CPU) {
	cpu.e = bit.Set(6, cpu.e)
}

//SET 6, H
//#0xF4:
func opcodeCB0xF4(cpu *CPU) {
	cpu.h = bit.Set(6, cpu.h)
}

//SET 6, L
//#0xF5:
func opcodeCB0xF5(cpu *CPU) {
	cpu.l = bit.Set(6, cpu.l)
}

//SET 6, (HL)
//#0xF6:
func opcodeCB0xF6(cpu *CPU) {
	value := bit.Set(6, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//SET 6, A
//#0xF7:
func opcodeCB0xF7(cpu *CPU) {
	cpu.a = bit.Set(6, cpu.a)
}

//SET 7, B
//#0xF8:
func opcodeCB0xF8(cpu *CPU) {
	cpu.b = bit.Set(7, cpu.b)
}

//SET 7, C
//#0xF9:
func opcodeCB0xF9(cpu *CPU) {
	cpu.c = bit.Set(7, cpu.c)
}

//SET 7, D
//#0xFA:
func opcodeCB0xFA(cpu *CPU) {
	cpu.d = bit.Set(7, cpu.d)
}

//SET 7, E
//#0xFB:
func opcodeCB0xFB(cpu *CPU) {
	cpu.e = bit.Set(7, cpu.e)
}

//SET 7, H
//#0xFC:
func opcodeCB0xFC(cpu *CPU) {
	cpu.h = bit.Set(7, cpu.h)
}

//SET 7, L
//#0xFD:
func opcodeCB0xFD(cpu *CPU) {
	cpu.l = bit.Set(7, cpu.l)
}

//SET 7, (HL)
//#0xFE:
func opcodeCB0xFE(cpu *CPU) {
	value := bit.Set(7, cpu.readByte(cpu.getHL()))
	cpu.writeByte(cpu.getHL(), value)
}

//SET 7, A
//#0xFF:
func opcodeCB0xFF(cpu *CPU) {
	cpu.a = bit.Set(7, cpu.a)
}
